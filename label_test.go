package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"UTF-8", "utf-8"},
		{"  utf8  ", "utf-8"},
		{"\tUTF8\n", "utf-8"},
		{"Shift_JIS", "shift_jis"},
		{"SJIS", "shift_jis"},
		{"GBK", "gbk"},
		{"gb2312", "gbk"},
		{"not-a-real-encoding", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeLabel(c.label), "label %q", c.label)
	}
}

func TestLookupUnknownLabel(t *testing.T) {
	_, ok := Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestLookupEveryRegisteredName(t *testing.T) {
	for _, name := range Names() {
		c, ok := Lookup(name)
		assert.True(t, ok, "Lookup(%q)", name)
		assert.Equal(t, name, c.Name)
	}
}
