package main

import (
	_ "github.com/Kirov7/RidDB/cmd/bench"
	"github.com/Kirov7/RidDB/cmd/root"
	_ "github.com/Kirov7/RidDB/cmd/shell"
)

func main() {
	root.Execute()
}
