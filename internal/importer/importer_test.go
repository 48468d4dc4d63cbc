package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenlight/internal/domain"
)

func ptrInt(i int) *int { return &i }

func validBreakdownFile() *BreakdownFile {
	return &BreakdownFile{
		Scenes: []SceneImport{
			{SceneNumber: 1, IntExt: "INT", DayNight: "DAY", LocationName: "Kitchen", EstimatedShots: 4},
			{SceneNumber: 2, IntExt: "EXT", DayNight: "DUSK", LocationName: "Garden", EstimatedShots: 6,
				Talent: &SceneTalentImport{HeroPrincipalCount: 1, FeaturedCount: 2}},
			{SceneNumber: 3, IntExt: "INT", DayNight: "DAY", LocationName: "Kitchen", IsLocationReused: true, EstimatedShots: 3},
		},
		Rollup: &RollupImport{
			TotalHeroPrincipal: 1,
			TotalFeatured:      2,
			EstimatedShootDays: 2,
			LocationMoves:      ptrInt(1),
		},
	}
}

func TestValidateBreakdown_ValidMinimal(t *testing.T) {
	errs := ValidateBreakdown(validBreakdownFile())
	assert.Empty(t, errs)
}

func TestValidateBreakdown_CollectsAllErrors(t *testing.T) {
	file := &BreakdownFile{
		UniqueLocations: -1,
		CompanyMoves:    ptrInt(-2),
		Scenes: []SceneImport{
			{SceneNumber: 0, IntExt: "INSIDE", DayNight: "DAY", LocationName: "Set", EstimatedShots: -3},
			{SceneNumber: 1, IntExt: "INT", DayNight: "NOON", LocationName: ""},
			{SceneNumber: 1, IntExt: "INT", DayNight: "DAY", LocationName: "Set", VFXLevel: "Extreme"},
		},
		Rollup: &RollupImport{EstimatedShootDays: -1, PeakExtras: -5},
	}

	errs := ValidateBreakdown(file)
	require.NotEmpty(t, errs)

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	assert.Contains(t, msgs, "unique_locations must not be negative")
	assert.Contains(t, msgs, "company_moves must not be negative")
	assert.Contains(t, msgs, "scenes[0].scene_number must be positive")
	assert.Contains(t, msgs, `scenes[0].int_ext: invalid value "INSIDE" (expected INT, EXT or INT/EXT)`)
	assert.Contains(t, msgs, "scenes[0].estimated_shots must not be negative")
	assert.Contains(t, msgs, `scenes[1].day_night: invalid value "NOON" (expected DAY, NIGHT, DUSK or DAWN)`)
	assert.Contains(t, msgs, "scenes[1].location_name is required")
	assert.Contains(t, msgs, "scenes[2].scene_number: duplicate scene number 1")
	assert.Contains(t, msgs, `scenes[2].vfx_level: invalid value "Extreme" (expected None, Light or Heavy)`)
	assert.Contains(t, msgs, "rollup.estimated_shoot_days must not be negative")
	assert.Contains(t, msgs, "rollup.peak_extras must not be negative")
	assert.GreaterOrEqual(t, len(errs), 11)
}

func TestValidateBreakdown_EmptyScenes(t *testing.T) {
	errs := ValidateBreakdown(&BreakdownFile{})
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "scenes is required and must not be empty")
}

func TestNormalizeFillsDefaults(t *testing.T) {
	file := &BreakdownFile{
		Scenes: []SceneImport{
			{SceneNumber: 1, IntExt: "INT", DayNight: "DAY", LocationName: "Kitchen", EstimatedShots: 0},
			{SceneNumber: 2, IntExt: "EXT", DayNight: "DAY", LocationName: "Garden", EstimatedShots: 5},
			{SceneNumber: 3, IntExt: "EXT", DayNight: "DAY", LocationName: "Street", EstimatedShots: 2},
		},
		Rollup: &RollupImport{EstimatedShootDays: 1},
	}

	Normalize(file)

	assert.Equal(t, 1, file.Scenes[0].EstimatedShots, "shot count floors at 1")
	assert.Equal(t, string(domain.VFXNone), file.Scenes[0].VFXLevel)
	assert.Equal(t, 3, file.TotalScenes)
	assert.Equal(t, 3, file.UniqueLocations)
	require.NotNil(t, file.CompanyMoves)
	assert.Equal(t, 2, *file.CompanyMoves, "moves default to locations minus one")
	assert.Equal(t, 8, file.Rollup.TotalEstimatedShots, "rollup shots derived from scenes")
	assert.Equal(t, 3, file.Rollup.ActualLocations)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	file := validBreakdownFile()
	file.TotalScenes = 10
	file.UniqueLocations = 5
	file.CompanyMoves = ptrInt(0)

	Normalize(file)

	assert.Equal(t, 10, file.TotalScenes)
	assert.Equal(t, 5, file.UniqueLocations)
	assert.Equal(t, 0, *file.CompanyMoves)
}

func TestToBreakdownMapsAllFields(t *testing.T) {
	file := validBreakdownFile()
	Normalize(file)

	b := ToBreakdown(file)

	assert.Equal(t, 3, b.TotalScenes)
	assert.Equal(t, 2, b.UniqueLocations)
	assert.Equal(t, 1, b.CompanyMoves)
	require.Len(t, b.Scenes, 3)

	assert.Equal(t, domain.IntExtExt, b.Scenes[1].IntExt)
	assert.Equal(t, domain.TimeDusk, b.Scenes[1].DayNight)
	assert.Equal(t, "Garden", b.Scenes[1].LocationName)
	assert.Equal(t, 1, b.Scenes[1].Talent.HeroPrincipalCount)
	assert.Equal(t, 2, b.Scenes[1].Talent.FeaturedCount)
	assert.True(t, b.Scenes[2].IsLocationReused)

	assert.Equal(t, 2, b.Rollup.EstimatedShootDays)
	require.NotNil(t, b.Rollup.LocationMoves)
	assert.Equal(t, 1, *b.Rollup.LocationMoves)
	assert.Equal(t, 13, b.Rollup.TotalEstimatedShots)
}

func TestLoadBreakdownFileRoundTrip(t *testing.T) {
	file := validBreakdownFile()
	data, err := json.Marshal(file)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "breakdown.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	b, errs := LoadBreakdownFile(path)
	require.Empty(t, errs)
	require.NotNil(t, b)
	assert.Equal(t, 3, b.TotalScenes)
	assert.Equal(t, 2, b.Rollup.EstimatedShootDays)
}

func TestLoadBreakdownFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	b, errs := LoadBreakdownFile(path)
	assert.Nil(t, b)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "parsing breakdown file")
}

func TestLoadBreakdownFileMissing(t *testing.T) {
	b, errs := LoadBreakdownFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(t, b)
	require.Len(t, errs, 1)
}
