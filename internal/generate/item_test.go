package generate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avuorina/MOBgenerator/internal/datapack"
	"github.com/Avuorina/MOBgenerator/internal/generate"
	"github.com/Avuorina/MOBgenerator/internal/sheet"
)

func TestResolveItem(t *testing.T) {
	it := generate.ResolveItem(sheet.ItemRow{
		NameJP:    "炎の剣",
		NameUS:    "FlameSword",
		BaseItem:  "iron_sword",
		ModelData: 1001,
		Lore:      "燃えている\n\n強い",
		BonusATK:  12,
	}, 1, defaults())

	assert.Equal(t, "001.flame_sword", it.UniqueID)
	assert.Equal(t, "flame_sword", it.SimpleID)
	assert.Equal(t, "minecraft:iron_sword", it.BaseItem)
	assert.Equal(t, []string{"燃えている", "強い"}, it.LoreLines, "blank lore lines are dropped")
}

func TestResolveItem_FallbackName(t *testing.T) {
	it := generate.ResolveItem(sheet.ItemRow{NameJP: "名無し"}, 7, defaults())
	assert.Equal(t, "007.item_7", it.UniqueID)
	assert.Equal(t, "minecraft:stone", it.BaseItem)
}

func TestItem_RegisterFile(t *testing.T) {
	it := generate.ResolveItem(sheet.ItemRow{
		NameJP:    "炎の剣",
		NameUS:    "FlameSword",
		BaseItem:  "iron_sword",
		ModelData: 1001,
		Lore:      "&7燃えている",
		BonusATK:  12,
		Speed:     1.6,
	}, 1, defaults())

	files := it.Files()
	require.Len(t, files, 2)
	reg := files[0]

	assert.Equal(t, datapack.ItemRegisterPath("001.flame_sword"), reg.Path)
	assert.Contains(t, reg.Content, "# 炎の剣\n# ID: 001.flame_sword\n# bank:item/001.flame_sword/register")
	assert.Contains(t, reg.Content, `data modify storage rpg_item:tmp id set value "minecraft:iron_sword"`)
	assert.Contains(t, reg.Content, `components."minecraft:custom_name" set value '{"text":"炎の剣","italic":false}'`)
	assert.Contains(t, reg.Content, `components."minecraft:lore" set value [{"text":"燃えている","color":"gray","italic":false}]`)
	assert.Contains(t, reg.Content, `components."minecraft:custom_model_data" set value {floats:[1001]}`)
	assert.Contains(t, reg.Content, `components."minecraft:custom_data".RPGItem.ID set value "001.flame_sword"`)
	assert.Contains(t, reg.Content, "stats.ATK set value 12.0")
	assert.Contains(t, reg.Content, "stats.Speed set value 1.6")
	assert.Contains(t, reg.Content, "stats.LUCK set value 0.0")
	assert.Contains(t, reg.Content, "data modify storage rpg_item:bank 001.flame_sword set from storage rpg_item:tmp")
	assert.Contains(t, reg.Content, "# [Give Command Example]")
}

func TestItem_LootTableFile(t *testing.T) {
	it := generate.ResolveItem(sheet.ItemRow{
		NameJP:    "炎の剣",
		NameUS:    "FlameSword",
		BaseItem:  "iron_sword",
		ModelData: 1001,
		Lore:      "燃えている",
	}, 1, defaults())

	loot := it.Files()[1]
	assert.Equal(t, datapack.ItemLootTablePath("flame_sword"), loot.Path)

	var table struct {
		Pools []struct {
			Rolls   int `json:"rolls"`
			Entries []struct {
				Type      string `json:"type"`
				Name      string `json:"name"`
				Functions []struct {
					Function string          `json:"function"`
					Name     json.RawMessage `json:"name"`
					Tag      string          `json:"tag"`
					Floats   []int           `json:"floats"`
				} `json:"functions"`
			} `json:"entries"`
		} `json:"pools"`
	}
	require.NoError(t, json.Unmarshal([]byte(loot.Content), &table))

	require.Len(t, table.Pools, 1)
	require.Len(t, table.Pools[0].Entries, 1)
	entry := table.Pools[0].Entries[0]

	assert.Equal(t, "minecraft:item", entry.Type)
	assert.Equal(t, "minecraft:iron_sword", entry.Name)
	require.Len(t, entry.Functions, 4)

	assert.Equal(t, "minecraft:set_name", entry.Functions[0].Function)
	assert.JSONEq(t, `{"text":"炎の剣","italic":false}`, string(entry.Functions[0].Name))
	assert.Equal(t, "minecraft:set_custom_data", entry.Functions[1].Function)
	assert.Equal(t, `{RPGItem:{ID:"001.flame_sword"}}`, entry.Functions[1].Tag)
	assert.Equal(t, "minecraft:set_lore", entry.Functions[2].Function)
	assert.Equal(t, "minecraft:set_custom_model_data", entry.Functions[3].Function)
	assert.Equal(t, []int{1001}, entry.Functions[3].Floats)
}

func TestItem_LootTableSkipsEmptyExtras(t *testing.T) {
	it := generate.ResolveItem(sheet.ItemRow{NameJP: "石", NameUS: "Stone"}, 2, defaults())

	loot := it.Files()[1]
	assert.NotContains(t, loot.Content, "set_lore")
	assert.NotContains(t, loot.Content, "set_custom_model_data")
}
