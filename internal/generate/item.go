package generate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Avuorina/MOBgenerator/internal/config"
	"github.com/Avuorina/MOBgenerator/internal/datapack"
	"github.com/Avuorina/MOBgenerator/internal/mctext"
	"github.com/Avuorina/MOBgenerator/internal/sheet"
)

// Item is one fully resolved item row. UniqueID prefixes the snake-cased
// name with the row index so renames keep IDs stable per row position.
type Item struct {
	UniqueID  string
	SimpleID  string
	NameJP    string
	BaseItem  string
	ModelData int
	LoreLines []string

	VanillaATK float64
	Range      float64
	Speed      float64

	ATK  float64
	HP   float64
	MP   float64
	STR  float64
	DEF  float64
	INT  float64
	AGI  float64
	LUCK float64
}

// ResolveItem merges an item row with defaults. index is the 1-based row
// position within the sheet's data rows.
func ResolveItem(row sheet.ItemRow, index int, defaults config.Defaults) Item {
	nameUS := row.NameUS
	if nameUS == "" {
		nameUS = fmt.Sprintf("item_%d", index)
	}
	simpleID := datapack.SnakeCase(nameUS)

	var lore []string
	for _, line := range strings.Split(row.Lore, "\n") {
		if line != "" {
			lore = append(lore, line)
		}
	}

	return Item{
		UniqueID:  fmt.Sprintf("%03d.%s", index, simpleID),
		SimpleID:  simpleID,
		NameJP:    row.NameJP,
		BaseItem:  qualifyID(row.BaseItem, defaults.BaseItem),
		ModelData: row.ModelData,
		LoreLines: lore,

		VanillaATK: row.VanillaATK,
		Range:      row.Range,
		Speed:      row.Speed,

		ATK:  row.BonusATK,
		HP:   row.BonusHP,
		MP:   row.BonusMP,
		STR:  row.BonusSTR,
		DEF:  row.BonusDEF,
		INT:  row.BonusINT,
		AGI:  row.BonusAGI,
		LUCK: row.BonusLUCK,
	}
}

// nameComponent is the custom_name component: color codes honored, italic
// forced off so item names render upright like vanilla named items.
func (it Item) nameComponent() string {
	return mctext.LineComponent(it.NameJP, "", false)
}

// loreComponents renders the lore lines as a component array, one entry per
// line, gray by default like the sheet's lore convention.
func (it Item) loreComponents() string {
	parts := make([]string, 0, len(it.LoreLines))
	for _, line := range it.LoreLines {
		parts = append(parts, mctext.LineComponent(line, "gray", false))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Files renders the register mcfunction and the loot table for the item.
func (it Item) Files() []datapack.File {
	return []datapack.File{
		it.registerFile(),
		it.lootTableFile(),
	}
}

func (it Item) registerFile() datapack.File {
	ref := datapack.ItemRegisterRef(it.UniqueID)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n# ID: %s\n# %s\n\n", it.NameJP, it.UniqueID, ref)

	fmt.Fprintf(&b, "# ストレージ初期化\n")
	fmt.Fprintf(&b, "data remove storage rpg_item:tmp\n\n")

	fmt.Fprintf(&b, "# 基本データ\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp id set value \"%s\"\n", it.BaseItem)
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp components set value {}\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp count set value 1\n\n")

	fmt.Fprintf(&b, "# 表示名 & Lore\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp components.\"minecraft:custom_name\" set value '%s'\n", it.nameComponent())
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp components.\"minecraft:lore\" set value %s\n\n", it.loreComponents())

	fmt.Fprintf(&b, "# CustomModelData\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp components.\"minecraft:custom_model_data\" set value {floats:[%d]}\n\n", it.ModelData)

	fmt.Fprintf(&b, "# 識別用タグ\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp components.\"minecraft:custom_data\".RPGItem.ID set value \"%s\"\n\n", it.UniqueID)

	fmt.Fprintf(&b, "# ステータス (RPG計算用)\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.ATK set value %s\n", num(it.ATK))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.HP set value %s\n", num(it.HP))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.MP set value %s\n", num(it.MP))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.STR set value %s\n", num(it.STR))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.DEF set value %s\n", num(it.DEF))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.INT set value %s\n", num(it.INT))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.AGI set value %s\n", num(it.AGI))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.LUCK set value %s\n\n", num(it.LUCK))

	fmt.Fprintf(&b, "# その他 (Vanilla属性)\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.VanillaATK set value %s\n", num(it.VanillaATK))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.Range set value %s\n", num(it.Range))
	fmt.Fprintf(&b, "data modify storage rpg_item:tmp stats.Speed set value %s\n\n", num(it.Speed))

	fmt.Fprintf(&b, "# 保存: rpg_item:bank の中に保存\n")
	fmt.Fprintf(&b, "data modify storage rpg_item:bank %s set from storage rpg_item:tmp\n\n", it.UniqueID)

	fmt.Fprintf(&b, "# [Give Command Example]\n")
	fmt.Fprintf(&b, "# give @s %s[custom_name='%s',custom_model_data={floats:[%d]},custom_data={RPGItem:{ID:\"%s\"}}]\n",
		it.BaseItem, it.nameComponent(), it.ModelData, it.UniqueID)

	return datapack.File{
		Path:    datapack.ItemRegisterPath(it.UniqueID),
		Content: b.String(),
		Label:   it.NameJP + " (Register)",
	}
}

// num formats a stat the way the sheet authors expect in storage: whole
// numbers keep one decimal place so they stay NBT doubles.
func num(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
