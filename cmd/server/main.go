package main

import "github.com/Michaelcode2/product-api-service/cmd"

func main() {
	cmd.Execute()
}
