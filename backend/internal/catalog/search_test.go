package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tierOf(hits []Hit, id string) (Tier, int) {
	for i, h := range hits {
		if h.Tool.ID == id {
			return h.Tier, i
		}
	}
	return "", -1
}

func TestSearch_BlankQuery(t *testing.T) {
	reg := Builtin()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := reg.Search(q)
		assert.NotNil(t, got)
		assert.Empty(t, got, "query %q", q)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Builtin().Search("zzzz-nothing-here"))
}

func TestSearch_EveryHitContainsQuery(t *testing.T) {
	reg := Builtin()
	for _, q := range []string{"image", "PASSWORD", "seo", "css", "convert", "  Text ", "qr"} {
		norm := NormalizeQuery(q)
		for _, d := range reg.Search(q) {
			haystack := []string{strings.ToLower(d.Name), strings.ToLower(string(d.Category)), strings.ToLower(d.Description)}
			haystack = append(haystack, d.Tags...)
			found := false
			for _, h := range haystack {
				if strings.Contains(h, norm) {
					found = true
					break
				}
			}
			assert.True(t, found, "query %q returned %s", q, d.ID)
		}
	}
}

func TestSearch_ExactBeforePartial(t *testing.T) {
	reg := Builtin()
	for _, q := range []string{"qr", "image", "generator", "password", "html"} {
		hits := reg.SearchTiered(q)
		seenPartial := false
		for _, h := range hits {
			if h.Tier == TierPartial {
				seenPartial = true
				continue
			}
			assert.False(t, seenPartial, "query %q: exact hit %s after a partial hit", q, h.Tool.ID)
		}
	}
}

func TestSearch_QRCodeGeneratorFirst(t *testing.T) {
	hits := Builtin().SearchTiered("QR Code Generator")
	require.NotEmpty(t, hits)
	assert.Equal(t, "qr-code-generator", hits[0].Tool.ID)
	assert.Equal(t, TierExact, hits[0].Tier)

	// the shortener only mentions a qr code in its description
	hits = Builtin().SearchTiered("qr")
	qrTier, qrIdx := tierOf(hits, "qr-code-generator")
	urlTier, urlIdx := tierOf(hits, "url-shortener")
	assert.Equal(t, TierExact, qrTier)
	assert.Equal(t, TierPartial, urlTier)
	assert.Less(t, qrIdx, urlIdx)
}

func TestSearch_PasswordGeneratorTiers(t *testing.T) {
	reg := Builtin()

	tier, idx := tierOf(reg.SearchTiered("password"), "password-generator")
	assert.Equal(t, TierExact, tier)
	assert.GreaterOrEqual(t, idx, 0)

	tier, idx = tierOf(reg.SearchTiered("security"), "password-generator")
	assert.Equal(t, TierPartial, tier)
	assert.GreaterOrEqual(t, idx, 0)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	reg := Builtin()
	assert.Equal(t, reg.Search("json"), reg.Search("  JSON "))
}

func TestSearch_MultiWordIsOneToken(t *testing.T) {
	reg := Builtin()
	// both words occur in the registry but never as this exact phrase
	assert.NotEmpty(t, reg.Search("image"))
	assert.NotEmpty(t, reg.Search("password"))
	assert.Empty(t, reg.Search("image password"))

	// a phrase that does occur verbatim still matches
	got := reg.Search("base64 data uri")
	require.Len(t, got, 1)
	assert.Equal(t, "image-to-base64", got[0].ID)
}

func TestSearch_RegistryOrderWithinTier(t *testing.T) {
	reg := Builtin()
	order := map[string]int{}
	for i, d := range reg.All() {
		order[d.ID] = i
	}

	hits := reg.SearchTiered("generator")
	for i := 1; i < len(hits); i++ {
		if hits[i].Tier != hits[i-1].Tier {
			continue
		}
		assert.Less(t, order[hits[i-1].Tool.ID], order[hits[i].Tool.ID])
	}
}

func TestSearch_CategoryMatchIsPartial(t *testing.T) {
	reg, err := New([]Descriptor{
		{ID: "a", Name: "Alpha", Path: "/a", Category: CategoryDesign},
		{ID: "b", Name: "Design Kit", Path: "/b", Category: CategoryText},
	})
	require.NoError(t, err)

	hits := reg.SearchTiered("design")
	require.Len(t, hits, 2)
	assert.Equal(t, "b", hits[0].Tool.ID)
	assert.Equal(t, TierExact, hits[0].Tier)
	assert.Equal(t, "a", hits[1].Tool.ID)
	assert.Equal(t, TierPartial, hits[1].Tier)
}
