package team

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	members, err := Load(http.Dir("testdata"), "team.yaml")
	require.NoError(t, err)

	assert.Equal(t, []Member{
		{Name: "Edda Voss", Role: "Editor", GitHub: "eddavoss"},
		{Name: "Mara Lindqvist", Role: "Design", GitHub: "mlindqvist"},
		{Name: "Tomas Aguiar", GitHub: "tomasaguiar"},
	}, members)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(http.Dir("testdata"), "nope.yaml")
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(http.Dir("testdata"), "broken.yaml")
	assert.Error(t, err)
}
