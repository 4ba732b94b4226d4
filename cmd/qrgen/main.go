// Command qrgen serves QR codes as SVG over HTTP and renders them from the
// command line.
package main

func main() {
	Execute()
}
