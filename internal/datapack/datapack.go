// Package datapack models generated datapack files and writes them under the
// datapack directory tree (data/<namespace>/function/..., loot_table/...).
package datapack

import (
	"path/filepath"
	"regexp"
	"strings"
)

// File is one generated output file, with Path relative to the datapack root.
type File struct {
	Path    string
	Content string
	// Label identifies the file in logs and reports (usually the mob or
	// item name plus the file kind).
	Label string
}

var (
	camelBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerToUpper  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// SnakeCase converts a spreadsheet name like "SkeletonWarrior" to a file
// identifier like "skeleton_warrior".
func SnakeCase(name string) string {
	s := camelBoundary.ReplaceAllString(name, "${1}_${2}")
	s = lowerToUpper.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// MobBankPath returns the bank mcfunction path for a mob, routed by its
// area/group/ai category and an optional boss subfolder.
func MobBankPath(area, group, ai, subfolder, id string) string {
	parts := []string{"data", "bank", "function", "mob", area, group, ai}
	if subfolder != "" {
		parts = append(parts, subfolder)
	}
	parts = append(parts, id+".mcfunction")
	return filepath.Join(parts...)
}

// MobBankRef returns the function reference loaded by the spawn_map file.
func MobBankRef(area, group, ai, subfolder, id string) string {
	if subfolder != "" {
		return "bank:mob/" + strings.Join([]string{area, group, ai, subfolder, id}, "/")
	}
	return "bank:mob/" + strings.Join([]string{area, group, ai, id}, "/")
}

// SpawnPath returns the spawn wrapper mcfunction path for a mob.
func SpawnPath(id string) string {
	return filepath.Join("data", "mob", "function", "spawn", id+".mcfunction")
}

// SpawnMapPath returns the spawn_map mcfunction path for a mob.
func SpawnMapPath(id string) string {
	return filepath.Join("data", "mob", "function", "spawn_map", id+".mcfunction")
}

// ItemRegisterPath returns the register mcfunction path for an item.
func ItemRegisterPath(uniqueID string) string {
	return filepath.Join("data", "bank", "function", "item", uniqueID, "register.mcfunction")
}

// ItemRegisterRef returns the function reference for an item register file.
func ItemRegisterRef(uniqueID string) string {
	return "bank:item/" + uniqueID + "/register"
}

// ItemLootTablePath returns the loot table JSON path for an item.
func ItemLootTablePath(id string) string {
	return filepath.Join("data", "rpg", "loot_table", "item", id+".json")
}
