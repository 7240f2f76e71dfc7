// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// The block command table, the configuration file and test fixtures all go
// through the same three steps:
//
//  1. Compile the embedded schema
//  2. Compile the data and unify it with a schema definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed commands_schema.cue
//	var schema []byte
//
//	res, err := cueutil.Decode[commandFile](schema, data, "#CommandFile",
//	    cueutil.WithFilename("commands.cue"))
//	if err != nil {
//	    return nil, err // error carries the CUE path of the bad field
//	}
//	return res.Value, nil
package cueutil
