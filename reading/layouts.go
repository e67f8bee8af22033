package reading

// LayoutByName returns the built-in layout matching name, and false if no
// such layout exists. name matches Layout.Name() case-sensitively.
func LayoutByName(name string) (Layout, bool) {
	switch name {
	case "Standard":
		return NewStandardLayout(), true
	case "Eten":
		return NewEtenLayout(), true
	case "Hsu":
		return NewHsuLayout(), true
	case "ETen26":
		return NewEten26Layout(), true
	case "HanyuPinyin":
		return NewHanyuPinyinLayout(), true
	case "IBM":
		return NewIBMLayout(), true
	default:
		return nil, false
	}
}
