package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfreq/gridpad/internal/canonjson"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	v, err := canonjson.DecodeOrdered([]byte(src))
	require.NoError(t, err)
	return v
}

func TestValidateAcceptsMinimalProfile(t *testing.T) {
	raw := decode(t, `{"id": "LOWW", "type": "Tabbed", "tabs": [{"label": ["APP"], "page": {"rows": 2, "keys": []}}]}`)
	assert.Empty(t, Validate(raw))
}

func TestValidateRejectsNonObjectRoot(t *testing.T) {
	issues := Validate(decode(t, `[1, 2]`))
	require.Len(t, issues, 1)
	assert.Equal(t, "profile must be a non-null JSON object", issues[0].String())
}

func TestValidateWrongTypeIsExclusiveFailure(t *testing.T) {
	// Everything else is broken too, but a wrong discriminant short-circuits.
	issues := Validate(decode(t, `{"id": "", "type": "Stacked", "tabs": []}`))
	require.Len(t, issues, 1)
	assert.Equal(t, "type", issues[0].Path)
}

func TestValidateMissingTypeIsExclusiveFailure(t *testing.T) {
	issues := Validate(decode(t, `{"id": "LOWW", "tabs": []}`))
	require.Len(t, issues, 1)
	assert.Equal(t, "type", issues[0].Path)
}

func TestValidateCollectsAllIssues(t *testing.T) {
	raw := decode(t, `{"id": "   ", "type": "Tabbed", "tabs": [{"label": "", "page": {"rows": 0, "keys": 7}}]}`)

	issues := Validate(raw)
	paths := make([]string, len(issues))
	for i, is := range issues {
		paths[i] = is.Path
	}
	assert.ElementsMatch(t, []string{"id", "tabs[0].label", "tabs[0].page.rows", "tabs[0].page.keys"}, paths)
}

func TestValidateRequiresNonEmptyTabs(t *testing.T) {
	issues := Validate(decode(t, `{"id": "LOWW", "type": "Tabbed", "tabs": []}`))
	require.Len(t, issues, 1)
	assert.Equal(t, "tabs", issues[0].Path)
}

func TestValidateTabMustBeObject(t *testing.T) {
	issues := Validate(decode(t, `{"id": "LOWW", "type": "Tabbed", "tabs": ["nope"]}`))
	require.Len(t, issues, 1)
	assert.Equal(t, "tabs[0]", issues[0].Path)
}

func TestValidatePageMustBeObject(t *testing.T) {
	issues := Validate(decode(t, `{"id": "LOWW", "type": "Tabbed", "tabs": [{"label": ["A"], "page": 3}]}`))
	require.Len(t, issues, 1)
	assert.Equal(t, "tabs[0].page", issues[0].Path)
}

func TestValidateAcceptsLegacyStringLabel(t *testing.T) {
	raw := decode(t, `{"id": "LOWW", "type": "Tabbed", "tabs": [{"label": "APP", "page": {"rows": 1}}]}`)
	assert.Empty(t, Validate(raw))
}

func TestValidateIgnoresDeepSubpageDamage(t *testing.T) {
	// Subpages below the second level are sanitized during normalization, not
	// validated, so a malformed nested page does not reject the file.
	raw := decode(t, `{"id": "LOWW", "type": "Tabbed", "tabs": [{"label": ["A"], "page": {"rows": 1, "keys": [{"label": ["K"], "page": {"rows": -9, "keys": "garbage"}}]}}]}`)
	assert.Empty(t, Validate(raw))
}

func TestValidationErrorJoinsIssues(t *testing.T) {
	err := &ValidationError{Issues: []Issue{
		{Path: "id", Message: "must be a non-empty string"},
		{Path: "tabs", Message: "must be a non-empty array"},
	}}
	assert.Equal(t, "invalid profile: id: must be a non-empty string; tabs: must be a non-empty array", err.Error())
}
