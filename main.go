package main

import "github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/cmd"

func main() {
	cmd.Execute()
}
