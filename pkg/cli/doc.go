// Package cli implements the oasfaker command-line interface.
//
// Commands:
//
//	oasfaker request <spec> <path> <method>    request body
//	oasfaker response <spec> <path> <method>   response body
//	oasfaker schema <spec> <name>              component schema value
//	oasfaker components <spec>                 component schema names
//	oasfaker paths <spec>                      operations
//	oasfaker regex-sample <pattern>            static pattern sample
//	oasfaker config                            resolved configuration
//	oasfaker version
//
// Generated values go to stdout as JSON (or YAML with -o yaml); logs go to
// stderr.
package cli
