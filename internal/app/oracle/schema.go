package oracle

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const intentionSchemaJSON = `{
  "type": "object",
  "required": ["studentName", "thought", "action", "targetX", "targetY", "newMemory"],
  "properties": {
    "studentName": {"type": "string", "minLength": 1},
    "thought": {"type": "string"},
    "action": {"type": "string"},
    "targetX": {"type": "integer"},
    "targetY": {"type": "integer"},
    "newMemory": {"type": "string"}
  }
}`

// ResponseSchema is sent with every request so providers that support
// structured output can enforce it server-side.
var ResponseSchema = []byte(fmt.Sprintf(`{
  "type": "object",
  "required": ["updates"],
  "properties": {
    "updates": {"type": "array", "items": %s}
  }
}`, intentionSchemaJSON))

var intentionSchema = jsonschema.MustCompileString("intention.schema.json", intentionSchemaJSON)
