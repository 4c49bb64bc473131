package datapack_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avuorina/MOBgenerator/internal/datapack"
	"github.com/Avuorina/MOBgenerator/internal/logging"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"SkeletonWarrior": "skeleton_warrior",
		"Zombie":          "zombie",
		"HPPotion":        "hp_potion",
		"sword2Handed":    "sword2_handed",
		"already_snake":   "already_snake",
	}
	for in, want := range cases {
		assert.Equal(t, want, datapack.SnakeCase(in), "input %q", in)
	}
}

func TestMobPaths(t *testing.T) {
	assert.Equal(t,
		filepath.Join("data", "bank", "function", "mob", "forest", "ground", "blow", "zombie_soldier.mcfunction"),
		datapack.MobBankPath("forest", "ground", "blow", "", "zombie_soldier"))

	assert.Equal(t,
		filepath.Join("data", "bank", "function", "mob", "forest", "ground", "blow", "boss", "forest_king.mcfunction"),
		datapack.MobBankPath("forest", "ground", "blow", "boss", "forest_king"))

	assert.Equal(t, "bank:mob/forest/ground/blow/zombie_soldier",
		datapack.MobBankRef("forest", "ground", "blow", "", "zombie_soldier"))
	assert.Equal(t, "bank:mob/forest/ground/blow/boss/forest_king",
		datapack.MobBankRef("forest", "ground", "blow", "boss", "forest_king"))

	assert.Equal(t, filepath.Join("data", "mob", "function", "spawn", "x.mcfunction"), datapack.SpawnPath("x"))
	assert.Equal(t, filepath.Join("data", "mob", "function", "spawn_map", "x.mcfunction"), datapack.SpawnMapPath("x"))
}

func TestItemPaths(t *testing.T) {
	assert.Equal(t,
		filepath.Join("data", "bank", "function", "item", "001.flame_sword", "register.mcfunction"),
		datapack.ItemRegisterPath("001.flame_sword"))
	assert.Equal(t, "bank:item/001.flame_sword/register", datapack.ItemRegisterRef("001.flame_sword"))
	assert.Equal(t,
		filepath.Join("data", "rpg", "loot_table", "item", "flame_sword.json"),
		datapack.ItemLootTablePath("flame_sword"))
}

func TestWriter_WriteAll(t *testing.T) {
	root := t.TempDir()
	w := datapack.NewWriter(root, logging.NewNop())

	files := []datapack.File{
		{Path: datapack.SpawnPath("zombie_soldier"), Content: "function mob:spawn_map/zombie_soldier\n", Label: "wrapper"},
		{Path: datapack.ItemRegisterPath("001.flame_sword"), Content: "# 炎の剣\n", Label: "register"},
	}
	require.NoError(t, w.WriteAll(files))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(root, f.Path))
		require.NoError(t, err)
		assert.Equal(t, f.Content, string(data))
	}
}

func TestWriter_Overwrite(t *testing.T) {
	root := t.TempDir()
	w := datapack.NewWriter(root, logging.NewNop())

	f := datapack.File{Path: "data/x.mcfunction", Content: "v1"}
	require.NoError(t, w.WriteAll([]datapack.File{f}))
	f.Content = "v2"
	require.NoError(t, w.WriteAll([]datapack.File{f}))

	data, err := os.ReadFile(filepath.Join(root, "data", "x.mcfunction"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}
