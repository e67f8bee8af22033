package bopomofo_test

import (
	"fmt"

	"github.com/clipperhouse/bopomofo"
	"github.com/clipperhouse/bopomofo/keyhandler"
	"github.com/clipperhouse/bopomofo/reading"
)

type fakeModel map[reading.Reading][]reading.Unigram

func (m fakeModel) Unigrams(r reading.Reading) []reading.Unigram { return m[r] }
func (m fakeModel) HasUnigrams(r reading.Reading) bool           { _, ok := m[r]; return ok }

func Example() {
	lm := fakeModel{
		"ㄓㄨㄥ":    {{Value: "中", Score: -2}, {Value: "終", Score: -3}},
		"ㄨㄣˊ":    {{Value: "文", Score: -2}},
		"ㄓㄨㄥ-ㄨㄣˊ": {{Value: "中文", Score: -1}},
	}

	engine := bopomofo.New(lm, keyhandler.DefaultSettings())

	var composing string
	for _, key := range "5j/ jp6" {
		engine.Handle(keyhandler.NewAsciiKey(byte(key), false, false),
			func(s keyhandler.InputState) {
				if st, ok := s.(keyhandler.StateInputting); ok {
					composing = st.ComposingText
				}
			},
			func(keyhandler.ErrorKind) {})
	}

	fmt.Println(composing)
	// Output: 中文
}
