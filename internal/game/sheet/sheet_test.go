package sheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/charsheet/internal/game/ability"
	"github.com/cory-johannsen/charsheet/internal/game/sheet"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const brannYAML = `
id: brann
name: "Brann Ironfist"
abilities:
  strength: 16
  DEX: 9
  constitution: 14
modifiers:
  - ability: STR
    value: 2
    descriptor: belt
  - ability: wisdom
    value: -1
hit_points: 28
hit_dice:
  - "Fighter: 3d10"
  - "Rogue: 1d8"
`

func TestLoadDirectory_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "brann.yaml"), brannYAML)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	reg, err := sheet.LoadDirectory(dir)
	require.NoError(t, err)
	require.Len(t, reg.All(), 1)

	def, ok := reg.Get("brann")
	require.True(t, ok)
	assert.Equal(t, "Brann Ironfist", def.Name)
	assert.Equal(t, 16, def.Abilities["strength"])
	assert.Equal(t, []string{"Fighter: 3d10", "Rogue: 1d8"}, def.HitDice)
	require.Len(t, def.Modifiers, 2)
	assert.Equal(t, "belt", def.Modifiers[0].Descriptor)
}

func TestLoadDirectory_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "id: bad\ngold: 100\n")
	_, err := sheet.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_RejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), "id: same\n")
	writeFile(t, filepath.Join(dir, "b.yaml"), "id: same\n")
	_, err := sheet.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_MissingDir(t *testing.T) {
	_, err := sheet.LoadDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDecode_RequiresID(t *testing.T) {
	_, err := sheet.Decode([]byte("name: nobody\n"))
	assert.Error(t, err)
}

func TestRegistry_AllSortedByID(t *testing.T) {
	reg := sheet.NewRegistry()
	reg.Register(&sheet.Def{ID: "zed"})
	reg.Register(&sheet.Def{ID: "ann"})
	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "ann", all[0].ID)
	assert.Equal(t, "zed", all[1].ID)
	assert.Panics(t, func() { reg.Register(&sheet.Def{}) })
}

func TestBuild(t *testing.T) {
	def, err := sheet.Decode([]byte(brannYAML))
	require.NoError(t, err)

	s, err := sheet.Build(def, ability.NewSequentialDescriptors("gen"))
	require.NoError(t, err)

	str := s.Abilities.Get(ability.Strength)
	assert.Equal(t, 16, str.Score(false))
	assert.Equal(t, 18, str.Score(true))
	assert.True(t, str.HasModifier("belt"))
	assert.True(t, s.Abilities.Get(ability.Wisdom).HasModifier("gen_1"))
	assert.Equal(t, 9, s.Abilities.Get(ability.Dexterity).Base())
	assert.Equal(t, 10, s.Abilities.Get(ability.Charisma).Base())

	assert.Equal(t, 28, s.HitPoints.Current)
	assert.Equal(t, 4, s.HitPoints.RemainingHitDice())
	fighter, ok := s.HitPoints.Pool("Fighter")
	require.True(t, ok)
	assert.Equal(t, 3, fighter.Capacity())
	assert.Equal(t, 10, fighter.Sides())

	want := "Brann Ironfist\n" +
		"STR: 16 +3\nDEX:  9 -1\nCON: 14 +2\nINT: 10 +0\nWIS: 10 +0\nCHA: 10 +0\n" +
		"HP: 28/28\n" +
		"HD: Fighter: 3d10 (3/3)\n" +
		"HD: Rogue: 1d8 (1/1)"
	assert.Equal(t, want, s.String())
}

func TestBuild_ModifiedDisplay(t *testing.T) {
	def := &sheet.Def{
		ID:              "x",
		Abilities:       map[string]int{"str": 10},
		Modifiers:       []sheet.ModifierDef{{Ability: "str", Value: 4, Descriptor: "belt"}},
		ModifiedDisplay: true,
		HitPoints:       5,
	}
	s, err := sheet.Build(def, nil)
	require.NoError(t, err)
	assert.Equal(t, "STR: 14 +2", s.Abilities.Get(ability.Strength).String())
}

// TestBuild_DuplicateAbilityIsAlwaysRejected builds the same template
// repeatedly so map iteration order cannot make the result vary.
func TestBuild_DuplicateAbilityIsAlwaysRejected(t *testing.T) {
	def, err := sheet.Decode([]byte("id: twin\nabilities:\n  strength: 16\n  STR: 8\n"))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		_, err := sheet.Build(def, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate ability Strength")
	}
}

func TestBuild_Errors(t *testing.T) {
	cases := map[string]*sheet.Def{
		"unknown ability":  {ID: "a", Abilities: map[string]int{"luck": 10}},
		"unknown modifier": {ID: "b", Modifiers: []sheet.ModifierDef{{Ability: "luck", Value: 1}}},
		"bad hit dice":     {ID: "c", HitDice: []string{"three d eight"}},
		"label and prefix": {ID: "d", Abilities: map[string]int{"strength": 16, "STR": 8}},
		"case variants":    {ID: "e", Abilities: map[string]int{"wis": 12, "Wisdom": 14}},
		"huge hit dice":    {ID: "f", HitDice: []string{"100000000000d6"}},
	}
	for name, def := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sheet.Build(def, nil)
			assert.Error(t, err)
		})
	}
}
