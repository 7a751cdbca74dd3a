package main

import (
	"campaignfinance/cmd/campaignfinance/commands"
	"context"
)

func main() {
	commands.ExecuteContext(context.Background())
}
