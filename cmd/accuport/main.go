package main

import (
	"accuport.cloud/fleet-service/pkg/cli"
)

func main() {
	cli.Execute()
}
