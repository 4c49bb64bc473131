package generate

import (
	"encoding/json"

	"github.com/Avuorina/MOBgenerator/internal/datapack"
)

// Loot table JSON shape, trimmed to the fields the generator emits.
type lootTable struct {
	Pools []lootPool `json:"pools"`
}

type lootPool struct {
	Rolls   int         `json:"rolls"`
	Entries []lootEntry `json:"entries"`
}

type lootEntry struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Functions []lootFunction `json:"functions,omitempty"`
}

type lootFunction struct {
	Function string          `json:"function"`
	Name     json.RawMessage `json:"name,omitempty"`
	Entity   string          `json:"entity,omitempty"`
	Lore     json.RawMessage `json:"lore,omitempty"`
	Tag      string          `json:"tag,omitempty"`
	Floats   []int           `json:"floats,omitempty"`
}

// lootTableFile renders a loot table dropping the finished item: base item
// with name, lore, model data and the RPGItem identity tag applied, so
// chests and mob drops can reference rpg:item/<id> directly.
func (it Item) lootTableFile() datapack.File {
	functions := []lootFunction{
		{
			Function: "minecraft:set_name",
			Entity:   "this",
			Name:     json.RawMessage(it.nameComponent()),
		},
		{
			Function: "minecraft:set_custom_data",
			Tag:      `{RPGItem:{ID:"` + it.UniqueID + `"}}`,
		},
	}
	if len(it.LoreLines) > 0 {
		functions = append(functions, lootFunction{
			Function: "minecraft:set_lore",
			Lore:     json.RawMessage(it.loreComponents()),
		})
	}
	if it.ModelData != 0 {
		functions = append(functions, lootFunction{
			Function: "minecraft:set_custom_model_data",
			Floats:   []int{it.ModelData},
		})
	}

	table := lootTable{
		Pools: []lootPool{{
			Rolls: 1,
			Entries: []lootEntry{{
				Type:      "minecraft:item",
				Name:      it.BaseItem,
				Functions: functions,
			}},
		}},
	}

	// Marshal cannot fail here: the table is plain structs and the raw
	// component JSON comes from our own serializer.
	data, _ := json.MarshalIndent(table, "", "  ")

	return datapack.File{
		Path:    datapack.ItemLootTablePath(it.SimpleID),
		Content: string(data) + "\n",
		Label:   it.NameJP + " (LootTable)",
	}
}
