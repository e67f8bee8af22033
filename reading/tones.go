package reading

// Tone marks. Tone 1 (the most common tone) carries no diacritic.
const (
	Tone2 = "ˊ"
	Tone3 = "ˇ"
	Tone4 = "ˋ"
	Tone5 = "˙"
)
