package reading

// dualRoleTable implements the compact (26-key) layouts, where a letter
// key means one thing before the syllable has a consonant or medial, and a
// different thing afterward (typically a vowel/final or a tone). This is
// how Hsu and Eten26 pack a 37-key Bopomofo chart onto a standard keyboard.
type dualRoleTable struct {
	name   string
	first  map[byte]binding // consonant/medial role, tried when the syllable has neither yet
	second map[byte]binding // vowel/tone role, tried once a consonant or medial is set
}

func (t *dualRoleTable) Name() string { return t.name }

func (t *dualRoleTable) Resolve(b *Buffer, key byte) (ComponentKind, string, bool) {
	startingFresh := b.consonant == "" && b.medial == ""
	if startingFresh {
		if bd, ok := t.first[key]; ok {
			return bd.kind, bd.value, true
		}
		if bd, ok := t.second[key]; ok && bd.kind == KindVowel {
			return bd.kind, bd.value, true
		}
		return 0, "", false
	}
	if bd, ok := t.second[key]; ok {
		return bd.kind, bd.value, true
	}
	if bd, ok := t.first[key]; ok {
		return bd.kind, bd.value, true
	}
	return 0, "", false
}
