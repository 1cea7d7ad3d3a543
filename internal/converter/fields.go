package converter

import "hospital-registry/internal/domain/entity"

// Partial update requests use nil pointers for untouched fields. These helpers copy the
// supplied ones into a Fields map keyed by storage name.

func putString(fields entity.Fields, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}

func putInt(fields entity.Fields, key string, value *int) {
	if value != nil {
		fields[key] = *value
	}
}

func putRef(fields entity.Fields, key string, value *entity.Ref) {
	if value != nil {
		fields[key] = *value
	}
}
