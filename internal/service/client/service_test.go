package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"SPRL Dubois", "sprl-dubois"},
		{"sprl dubois", "sprl-dubois"},
		{"  Bâtiments & Co  ", "b-timents-co"},
		{"Client 2024", "client-2024"},
		{"---", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.name), "Slugify(%q)", tc.name)
	}
}

func TestSlugifyGroupsCaseVariants(t *testing.T) {
	assert.Equal(t, Slugify("SPRL Dubois"), Slugify("SPRL  DUBOIS"))
}
