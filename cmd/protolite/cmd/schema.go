package cmd

import "github.com/gowire/protolite"

// noteSchema is the demo message the encode/decode/describe subcommands
// exercise: a small note with an id, a body, and freeform tags.
var noteSchema, noteSchemaErr = protolite.Message(
	protolite.F("id", protolite.Int32(1)),
	protolite.F("body", protolite.String(2)),
	protolite.F("tags", protolite.Repeated.Expanded.String(3)),
)
