package catalog

// overlaySchema validates catalog overlay documents before they are decoded
// into definitions. Structural errors (wrong types, missing fields) surface
// here with a path; semantic invariants are enforced by New afterwards.
const overlaySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["actions"],
  "additionalProperties": false,
  "properties": {
    "actions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["actionId", "displayName", "actionType", "priority"],
        "additionalProperties": false,
        "properties": {
          "actionId": {"type": "string", "minLength": 1},
          "displayName": {"type": "string", "minLength": 1},
          "actionType": {"enum": ["GO_TO", "IN_APP"]},
          "description": {"type": "string"},
          "requiredEntities": {"type": "array", "items": {"type": "string"}},
          "validIntents": {"type": "array", "items": {"type": "string"}},
          "priority": {"type": "integer", "minimum": 1},
          "urlTemplate": {"type": "string"},
          "isPremium": {"type": "boolean"},
          "handler": {"type": "string"}
        }
      }
    }
  }
}`
