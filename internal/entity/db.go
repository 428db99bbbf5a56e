package entity

// Re-export common types so callers only import the entity package.

import (
	"echoforge/internal/entity/common"
)

type StringArray = common.StringArray
type JSONMap = common.JSONMap
type Meta = common.Meta
type BaseParams = common.BaseParams
