// Command ninjacore inspects the NinjaCore bounds/erasure core from the
// shell: validate skip/take windows, securely clear buffer ranges, and
// extract encoded character windows.
package main

import "github.com/RyanMauldin/NinjaCore/internal/cmd"

func main() {
	cmd.Execute()
}
