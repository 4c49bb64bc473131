package sheet

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// MobRow is one mob record. The mapstructure tags mirror the sheet's header
// row verbatim, Japanese column names included.
type MobRow struct {
	NameJP      string `mapstructure:"NameJP"`
	NameUS      string `mapstructure:"NameUS"`
	Entity      string `mapstructure:"ID"`
	CustomName  string `mapstructure:"ベース"`
	Equipment   string `mapstructure:"見た目"`
	Area        string `mapstructure:"エリア"`
	Group       string `mapstructure:"グループ"`
	AI          string `mapstructure:"AI"`
	SpawnTags   string `mapstructure:"スポーンタグ"`
	Level       string `mapstructure:"推定lev"`
	MaxHP       string `mapstructure:"HP"`
	Attack      string `mapstructure:"str"`
	Defense     string `mapstructure:"def"`
	Speed       string `mapstructure:"agi"`
	Luck        string `mapstructure:"luck"`
	MoveSpeed   string `mapstructure:"移動速度"`
	FollowRange string `mapstructure:"索敵範囲"`
	Knockback   string `mapstructure:"ノックバック耐性"`
	BaseAttack  string `mapstructure:"攻撃力"`
}

// Empty reports whether the row should be skipped (no Japanese name).
func (m MobRow) Empty() bool {
	return strings.TrimSpace(m.NameJP) == ""
}

// DecodeMob maps a header-keyed row onto a MobRow.
func DecodeMob(row Row) (MobRow, error) {
	var m MobRow
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return m, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(map[string]string(row)); err != nil {
		return m, fmt.Errorf("decode mob row: %w", err)
	}
	return m, nil
}

// Item sheet column positions (0-indexed, fixed by the sheet layout).
const (
	itemColModelData = iota
	itemColNameJP
	itemColNameUS
	itemColLore
	itemColBaseItem
	itemColVanillaATK
	itemColRange
	itemColSpeed
	itemColBonusATK
	itemColBonusHP
	itemColBonusMP
	itemColBonusSTR
	itemColBonusDEF
	itemColBonusINT
	itemColBonusAGI
	itemColBonusLUCK
)

// ItemRow is one item record from the position-indexed item sheet.
type ItemRow struct {
	ModelData  int
	NameJP     string
	NameUS     string
	Lore       string
	BaseItem   string
	VanillaATK float64
	Range      float64
	Speed      float64
	BonusATK   float64
	BonusHP    float64
	BonusMP    float64
	BonusSTR   float64
	BonusDEF   float64
	BonusINT   float64
	BonusAGI   float64
	BonusLUCK  float64
}

// DecodeItem reads one positional record. Blank or unparsable numeric cells
// fall back to zero, matching the sheet's best-effort posture.
func DecodeItem(rec []string) ItemRow {
	return ItemRow{
		ModelData:  Int(Col(rec, itemColModelData)),
		NameJP:     strings.TrimSpace(Col(rec, itemColNameJP)),
		NameUS:     strings.TrimSpace(Col(rec, itemColNameUS)),
		Lore:       strings.TrimSpace(Col(rec, itemColLore)),
		BaseItem:   strings.TrimSpace(Col(rec, itemColBaseItem)),
		VanillaATK: Float(Col(rec, itemColVanillaATK)),
		Range:      Float(Col(rec, itemColRange)),
		Speed:      Float(Col(rec, itemColSpeed)),
		BonusATK:   Float(Col(rec, itemColBonusATK)),
		BonusHP:    Float(Col(rec, itemColBonusHP)),
		BonusMP:    Float(Col(rec, itemColBonusMP)),
		BonusSTR:   Float(Col(rec, itemColBonusSTR)),
		BonusDEF:   Float(Col(rec, itemColBonusDEF)),
		BonusINT:   Float(Col(rec, itemColBonusINT)),
		BonusAGI:   Float(Col(rec, itemColBonusAGI)),
		BonusLUCK:  Float(Col(rec, itemColBonusLUCK)),
	}
}

// Empty reports whether the row should be skipped (no Japanese name).
func (i ItemRow) Empty() bool {
	return i.NameJP == ""
}

// Float parses a numeric cell loosely, returning 0 for anything unparsable.
func Float(s string) float64 {
	return cast.ToFloat64(strings.TrimSpace(s))
}

// Int parses an integer cell loosely, returning 0 for anything unparsable.
func Int(s string) int {
	return cast.ToInt(strings.TrimSpace(s))
}
