// Command olkdump decodes a single record file and prints its property
// map. It's a developer harness for the decoder, not a replacement for the
// external index loader or emitters.
package main

func main() {
	execute()
}
