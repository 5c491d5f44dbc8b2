// Command uiua evaluates array language programs.
package main

import "github.com/YoutacRandS-VA/uiua/cmd"

func main() {
	cmd.Execute()
}
