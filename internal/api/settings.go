package api

import (
	"context"
)

// SettingGroup is a group of store settings.
type SettingGroup struct {
	ID          string   `json:"id"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	SubGroups   []string `json:"sub_groups,omitempty"`
}

// SettingOption is one store setting. Value and Default are strings for
// most settings but arrays or objects for some.
type SettingOption struct {
	ID          string            `json:"id"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       any               `json:"value,omitempty"`
	Default     any               `json:"default,omitempty"`
	Tip         string            `json:"tip,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Type        string            `json:"type,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
	GroupID     string            `json:"group_id,omitempty"`
}

type settingValue struct {
	Value any `json:"value"`
}

// Groups retrieves the setting groups.
func (s SettingsService) Groups(ctx context.Context) ([]SettingGroup, error) {
	return getList[SettingGroup](ctx, s, "settings", nil)
}

// List retrieves every option of a group.
func (s SettingsService) List(ctx context.Context, group string) ([]SettingOption, error) {
	return getList[SettingOption](ctx, s, endpointf("settings/%s", group), nil)
}

// Get retrieves one option. It returns nil when it does not exist.
func (s SettingsService) Get(ctx context.Context, group, id string) (*SettingOption, error) {
	return getOne[SettingOption](ctx, s, endpointf("settings/%s/%s", group, id), nil)
}

// Update sets the value of one option.
func (s SettingsService) Update(ctx context.Context, group, id string, value any) (*SettingOption, error) {
	return update[SettingOption](ctx, s, endpointf("settings/%s/%s", group, id), settingValue{Value: value})
}
