package languagemodel_test

import (
	"testing"

	"github.com/clipperhouse/bopomofo/languagemodel"
)

func TestDynamicDelegatesAndSwaps(t *testing.T) {
	first := fakeModel{"ㄍㄨㄥㄙ": {{Value: "公司", Score: -6.30}}}
	second := fakeModel{"ㄍㄨㄥㄙ": {{Value: "攻司", Score: -1.0}}}

	d := languagemodel.NewDynamic(first)
	if !d.HasUnigrams("ㄍㄨㄥㄙ") {
		t.Fatal("expected HasUnigrams true before swap")
	}
	if got := d.Unigrams("ㄍㄨㄥㄙ"); got[0].Value != "公司" {
		t.Fatalf("got %+v before swap", got)
	}

	d.Store(second)
	if got := d.Unigrams("ㄍㄨㄥㄙ"); got[0].Value != "攻司" {
		t.Fatalf("got %+v after swap", got)
	}
	if d.HasUnigrams("ㄅㄨˊㄗㄞˋ") {
		t.Fatal("expected HasUnigrams false for an unknown reading")
	}
}
