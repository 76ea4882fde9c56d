package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"duochat/domain"
	"duochat/internal"
	"duochat/repositories"
)

func main() {
	a := flag.String("a", "", "first participant of the conversation")
	b := flag.String("b", "", "second participant of the conversation")
	flag.Parse()

	if *a == "" || *b == "" {
		flag.Usage()
		os.Exit(2)
	}

	config, err := internal.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// BypassLockGuard allows inspection while the owning process holds the lock
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(options)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewReadOnlyBadgerRepository(db, logger)
	messages, err := repository.FindConversation(context.Background(), *a, *b)
	if err != nil {
		log.Fatalf("Failed to load conversation: %v", err)
	}

	if len(messages) == 0 {
		fmt.Printf("No messages between %s and %s\n", *a, *b)
		return
	}

	render(os.Stdout, *a, *b, messages)
}

func render(out *os.File, a, b string, messages []domain.Message) {
	fmt.Fprintln(out, color.Cyan.Sprintf("Conversation %s <-> %s (%d messages)", a, b, len(messages)))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "At", "From", "To", "Content", "Read"})
	for _, m := range messages {
		read := color.Gray.Sprint("unread")
		if m.IsRead {
			read = color.Green.Sprint("read")
		}
		table.Append([]string{
			fmt.Sprintf("%d", m.ID),
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.SenderID,
			m.ReceiverID,
			m.Content,
			read,
		})
	}
	table.Render()
}
