// Command nushell is the interactive POSIX-family shell's entrypoint.
package main

func main() {
	Execute()
}
