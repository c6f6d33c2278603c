package models

// BoardBlob is the durable mirror of one key-value blob (the serialized
// complaint array lives under a single key).
type BoardBlob struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text"`
}
