// @title Conference Hub API
// @version 1.0
// @description REST backend for conferences, their talks, speakers and participants.
// @BasePath /
// @schemes http https
package main

import "conferencehub/cmd/conferencehub/cmd"

func main() {
	cmd.Execute()
}
