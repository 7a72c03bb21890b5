package types

import (
	"encoding/json"
	fmt "fmt"

	collcodec "cosmossdk.io/collections/codec"
)

var (
	// ParamsValue is the collections value codec for Params.
	ParamsValue = NewJSONValueCodec[Params]("rwavault/Params")
	// VaultConfigValue is the collections value codec for VaultConfig.
	VaultConfigValue = NewJSONValueCodec[VaultConfig]("rwavault/VaultConfig")
	// VaultStateValue is the collections value codec for VaultState.
	VaultStateValue = NewJSONValueCodec[VaultState]("rwavault/VaultState")
	// AllocationTableValue is the collections value codec for AllocationTable.
	AllocationTableValue = NewJSONValueCodec[AllocationTable]("rwavault/AllocationTable")
	// FeeConfigValue is the collections value codec for FeeConfig.
	FeeConfigValue = NewJSONValueCodec[FeeConfig]("rwavault/FeeConfig")
)

type jsonValueCodec[T any] struct {
	valueType string
}

// NewJSONValueCodec returns a collections value codec that stores T as JSON.
// encoding/json emits struct fields in declaration order, so the encoding is deterministic.
func NewJSONValueCodec[T any](valueType string) collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{valueType: valueType}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", c.valueType, err)
	}
	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("%+v", value)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.valueType
}
