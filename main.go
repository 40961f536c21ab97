package main

import "github.com/mtsuhr/coffee-shop-env/cli"

func main() {
	cli.Execute()
}
