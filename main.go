// webpify converts the JPEG images of the current directory into
// mobile and desktop WebP renditions.
package main

import "github.com/gaurav-prasanna/webpify/cmd"

func main() {
	cmd.Execute()
}
