/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StringConvertibleTypes are the declared types that have a canonical string
// form. The list order is part of the error message contract.
var StringConvertibleTypes = []Type{
	TypeInt8,
	TypeInt16,
	TypeInt32,
	TypeInt64,
	TypeFloat32,
	TypeFloat64,
	TypeBoolean,
	TypeString,
}

// StringConvertible reports whether values of the declared type can be
// converted to their canonical string form.
func StringConvertible(t Type) bool {
	for _, c := range StringConvertibleTypes {
		if c == t {
			return true
		}
	}
	return false
}

// TypeList renders a type set the way error messages name it,
// e.g. "[INT8, INT16, INT32, INT64, FLOAT32, FLOAT64, BOOLEAN, STRING]".
func TypeList(types []Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// RuntimeType infers the declared type matching a runtime value. It is the
// fallback for unstructured payloads, which carry no schema. Plain int is
// treated as INT64.
func RuntimeType(v interface{}) (Type, bool) {
	switch v.(type) {
	case int8:
		return TypeInt8, true
	case int16:
		return TypeInt16, true
	case int32:
		return TypeInt32, true
	case int64, int:
		return TypeInt64, true
	case float32:
		return TypeFloat32, true
	case float64:
		return TypeFloat64, true
	case bool:
		return TypeBoolean, true
	case string:
		return TypeString, true
	case []byte:
		return TypeBytes, true
	case time.Time:
		return TypeTimestamp, true
	case *Struct:
		return TypeStruct, true
	case map[string]interface{}:
		return TypeMap, true
	default:
		return 0, false
	}
}

// FormatValue returns the canonical string form of a scalar value.
func FormatValue(v interface{}) string {
	switch w := v.(type) {
	case string:
		return w
	case bool:
		return strconv.FormatBool(w)
	case int8:
		return strconv.FormatInt(int64(w), 10)
	case int16:
		return strconv.FormatInt(int64(w), 10)
	case int32:
		return strconv.FormatInt(int64(w), 10)
	case int64:
		return strconv.FormatInt(w, 10)
	case int:
		return strconv.FormatInt(int64(w), 10)
	case float32:
		return strconv.FormatFloat(float64(w), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(w, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ValueBytes returns the record's value payload as raw bytes for expression
// evaluation. Structured and unstructured payloads are rendered as JSON.
func ValueBytes(r *Record) ([]byte, error) {
	switch v := r.Value.(type) {
	case nil:
		return nil, InvalidRecordf("value can't be null: %s", r)
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case *Struct, map[string]interface{}:
		return json.Marshal(v)
	default:
		return nil, InvalidRecordf("value type must be STRUCT, MAP, STRING or BYTES: %s", r)
	}
}
