// oasfaker CLI - generate fake data from OpenAPI documents
package main

import "github.com/getmockd/oasfaker/pkg/cli"

func main() {
	cli.Execute()
}
