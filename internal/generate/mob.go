// Package generate turns decoded sheet rows into datapack files: bank,
// spawn_map and spawn wrapper mcfunctions for mobs, register mcfunctions and
// loot tables for items.
package generate

import (
	"fmt"
	"strings"

	"github.com/Avuorina/MOBgenerator/internal/config"
	"github.com/Avuorina/MOBgenerator/internal/datapack"
	"github.com/Avuorina/MOBgenerator/internal/mctext"
	"github.com/Avuorina/MOBgenerator/internal/nbt"
	"github.com/Avuorina/MOBgenerator/internal/sheet"
)

// Mob is one fully resolved mob: row values merged with defaults, category
// routing decided, tags assembled and the equipment cell parsed per slot.
type Mob struct {
	ID         string
	NameJP     string
	Entity     string
	Area       string
	Group      string
	AI         string
	Subfolder  string
	Boss       bool
	Tags       []string
	CustomName string
	Equipment  nbt.Equipment

	Level       string
	MaxHP       string
	Attack      string
	Defense     string
	Speed       string
	Luck        string
	MoveSpeed   string
	FollowRange string
	Knockback   string
}

// ResolveMob merges a row with the configured defaults and derives the
// mob's identity, category routing, tag set and equipment.
func ResolveMob(row sheet.MobRow, defaults config.Defaults) Mob {
	nameJP := strings.TrimSpace(row.NameJP)
	nameUS := strings.TrimSpace(row.NameUS)
	if nameUS == "" {
		nameUS = nameJP
	}

	m := Mob{
		ID:     datapack.SnakeCase(nameUS),
		NameJP: nameJP,
		Entity: qualifyID(strings.TrimSpace(row.Entity), defaults.BaseEntity),

		Area:  orDefault(strings.ToLower(strings.TrimSpace(row.Area)), defaults.Area),
		Group: orDefault(strings.ToLower(strings.TrimSpace(row.Group)), defaults.Group),
		AI:    orDefault(strings.ToLower(strings.TrimSpace(row.AI)), defaults.AI),

		CustomName: strings.TrimSpace(row.CustomName),
		Equipment:  nbt.ExtractEquipment(strings.TrimSpace(row.Equipment)),

		Level:       orDefault(strings.TrimSpace(row.Level), defaults.Level),
		MaxHP:       orDefault(strings.TrimSpace(row.MaxHP), defaults.MaxHP),
		Attack:      orDefault(strings.TrimSpace(row.Attack), defaults.Attack),
		Defense:     orDefault(strings.TrimSpace(row.Defense), defaults.Defense),
		Speed:       orDefault(strings.TrimSpace(row.Speed), defaults.Speed),
		Luck:        orDefault(strings.TrimSpace(row.Luck), defaults.Luck),
		MoveSpeed:   orDefault(strings.TrimSpace(row.MoveSpeed), defaults.MoveSpeed),
		FollowRange: orDefault(strings.TrimSpace(row.FollowRange), defaults.FollowRange),
		Knockback:   orDefault(strings.TrimSpace(row.Knockback), defaults.Knockback),
	}

	// Bosses keep "blow" as their working AI but route into a boss subfolder.
	if m.AI == "boss" {
		m.AI = "blow"
		m.Subfolder = "boss"
	}

	spawnTags := strings.TrimSpace(row.SpawnTags)
	m.Boss = strings.Contains(spawnTags, "BOSS") || strings.Contains(spawnTags, "Boss")
	m.Tags = assembleTags(m, spawnTags)
	return m
}

// assembleTags builds the entity tag list: fixed control tags, category
// tags, then any extra spawn tags from the sheet that do not duplicate a
// category. Extra tags arrive either as "Tags:[a,b]" or bare comma lists.
func assembleTags(m Mob, spawnTags string) []string {
	tags := []string{"MOB", "mob." + m.ID, "mob.new"}
	if m.Boss {
		tags = append(tags, "mob.boss")
	}
	tags = append(tags, capitalize(m.Area), capitalize(m.Group), capitalize(m.AI))

	for _, tag := range extraTags(spawnTags) {
		switch strings.ToLower(tag) {
		case m.Area, m.Group, m.AI, "boss":
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func extraTags(spawnTags string) []string {
	if spawnTags == "" {
		return nil
	}
	list := spawnTags
	if idx := strings.Index(spawnTags, "Tags:["); idx >= 0 {
		inner, ok := nbt.ScanBalanced(spawnTags, idx+len("Tags:"), '[', ']')
		if !ok {
			return nil
		}
		list = inner
	}

	var tags []string
	for _, t := range strings.Split(list, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Files renders the three mcfunctions generated per mob.
func (m Mob) Files() []datapack.File {
	return []datapack.File{
		m.bankFile(),
		m.spawnMapFile(),
		m.spawnWrapperFile(),
	}
}

// customName returns the CustomName NBT entry for the summon command: the
// sheet's literal CustomName override when the cell carries one, otherwise
// the Japanese name (color codes honored) with a gray level suffix.
func (m Mob) customName() string {
	if strings.Contains(m.CustomName, "CustomName") {
		return strings.ReplaceAll(m.CustomName, `""`, `"`)
	}
	name := mctext.LineComponent(m.NameJP, "white", false)
	return fmt.Sprintf(`CustomName:[%s,{"text":" Lv%s","color":"gray"}]`, name, m.Level)
}

// equipmentNBT renders the non-empty slots back into an equipment compound,
// hands first, then armor from feet to head. Empty when no slot is set.
func (m Mob) equipmentNBT() string {
	var parts []string
	for i, slot := range nbt.HandSlots {
		if m.Equipment.Hands[i] != nbt.EmptySlot {
			parts = append(parts, slot+":{"+m.Equipment.Hands[i]+"}")
		}
	}
	for i, slot := range nbt.ArmorSlots {
		if m.Equipment.Armor[i] != nbt.EmptySlot {
			parts = append(parts, slot+":{"+m.Equipment.Armor[i]+"}")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "equipment:{" + strings.Join(parts, ",") + "}"
}

// summonNBT builds the NBT compound for the summon command.
func (m Mob) summonNBT() string {
	parts := []string{
		"Tags:[" + strings.Join(m.Tags, ",") + "]",
		m.customName(),
	}
	if eq := m.equipmentNBT(); eq != "" {
		parts = append(parts, eq)
	}
	parts = append(parts, "CustomNameVisible:true", "PersistenceRequired:true")
	return "{" + strings.Join(parts, ",") + "}"
}

// appearance builds the 見た目 storage value: CustomName override plus the
// re-rendered equipment compound, or an empty compound when both are absent.
func (m Mob) appearance() string {
	var parts []string
	if m.CustomName != "" {
		parts = append(parts, strings.ReplaceAll(m.CustomName, `""`, `"`))
	}
	if eq := m.equipmentNBT(); eq != "" {
		parts = append(parts, eq)
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (m Mob) bankRef() string {
	return datapack.MobBankRef(m.Area, m.Group, m.AI, m.Subfolder, m.ID)
}

func (m Mob) bankFile() datapack.File {
	tags := strings.Join(m.Tags, ",")

	var b strings.Builder
	fmt.Fprintf(&b, "# %s 設定\n# %s\n\n", m.NameJP, m.bankRef())

	fmt.Fprintf(&b, "# [Spawn Egg Command]\n")
	fmt.Fprintf(&b, "# give @p zombie_spawn_egg[entity_data={id:\"minecraft:armor_stand\",NoGravity:1b,Invisible:1b,Tags:[\"mob.egg_spawn\"],equipment:{head:{id:\"minecraft:stone\",count:1,components:{\"minecraft:custom_data\":{\"RPGMobId\":\"%s\"}}}}},item_name={\"text\":\"%s Spawn Egg\",\"color\":\"gold\"}] 1\n\n", m.ID, m.NameJP)

	fmt.Fprintf(&b, "# ベースエンティティ\n")
	fmt.Fprintf(&b, "data modify storage rpg_mob: ベース set value {id:\"%s\",Tags:[%s]}\n\n", m.Entity, tags)

	fmt.Fprintf(&b, "# 見た目\n")
	fmt.Fprintf(&b, "data modify storage rpg_mob: 見た目 set value %s\n\n", m.appearance())

	fmt.Fprintf(&b, "# ステータス\n")
	fmt.Fprintf(&b, "data modify storage rpg_mob: レベル set value %s\n", m.Level)
	fmt.Fprintf(&b, "data modify storage rpg_mob: 最大HP set value %s\n", m.MaxHP)
	fmt.Fprintf(&b, "data modify storage rpg_mob: 物理攻撃力 set value %s\n", m.Attack)
	fmt.Fprintf(&b, "data modify storage rpg_mob: 物理防御力 set value %s\n", m.Defense)
	fmt.Fprintf(&b, "data modify storage rpg_mob: 素早さ set value %s\n", m.Speed)
	fmt.Fprintf(&b, "data modify storage rpg_mob: 運 set value %s\n\n", m.Luck)

	fmt.Fprintf(&b, "# AIパラメータ\n")
	fmt.Fprintf(&b, "data modify storage rpg_mob: ai_speed set value %s\n", m.MoveSpeed)
	fmt.Fprintf(&b, "data modify storage rpg_mob: ai_follow_range set value %s\n", m.FollowRange)
	fmt.Fprintf(&b, "data modify storage rpg_mob: ai_knockback_resistance set value %s\n", m.Knockback)

	if m.Boss {
		fmt.Fprintf(&b, "\n# ボスフラグ\ndata modify storage rpg_mob: ボス set value true\n")
	}

	return datapack.File{
		Path:    datapack.MobBankPath(m.Area, m.Group, m.AI, m.Subfolder, m.ID),
		Content: b.String(),
		Label:   m.NameJP + " (Bank)",
	}
}

func (m Mob) spawnMapFile() datapack.File {
	content := fmt.Sprintf(`# %sの実体召喚処理
# spawn_map: %s

# 設定をロード（Storage: rpg_mob）
function %s

summon %s ~ ~ ~ %s

# 新規MOBにステータスを設定
execute as @e[tag=mob.%s,tag=!mob.initialized,limit=1] run function mob:setup/apply_from_storage
`, m.NameJP, m.ID, m.bankRef(), m.Entity, m.summonNBT(), m.ID)

	return datapack.File{
		Path:    datapack.SpawnMapPath(m.ID),
		Content: content,
		Label:   m.NameJP + " (SpawnMap)",
	}
}

func (m Mob) spawnWrapperFile() datapack.File {
	content := fmt.Sprintf(`# %sを召喚（ラッパー）
# 使用方法: /function mob:spawn/%s

function mob:spawn_map/%s
`, m.NameJP, m.ID, m.ID)

	return datapack.File{
		Path:    datapack.SpawnPath(m.ID),
		Content: content,
		Label:   m.NameJP + " (SpawnWrapper)",
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// qualifyID prefixes a bare registry name with "minecraft:".
func qualifyID(id, def string) string {
	if id == "" {
		id = def
	}
	if id == "" || strings.HasPrefix(id, "minecraft:") {
		return id
	}
	return "minecraft:" + id
}

// capitalize matches the sheet's category-tag casing: first rune upper,
// rest lower ("BOSS" becomes "Boss").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
