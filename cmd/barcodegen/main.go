// Package main provides the barcodegen command line tool.
//
// Usage:
//
//	barcodegen encode --symbology ean13 590123412345
//	barcodegen batch --symbology qr --out-dir out payloads.txt
//	barcodegen serve --addr :3333
//
// See --help for all available options.
package main

func main() {
	Execute()
}
