package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var chatUser string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the career coach",
	Long:  `Opens an interactive conversation. Skills mentioned in messages accumulate into your profile and recognized task requests get pointed at the right command. Type "quit" to leave.`,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatUser, "user", "u", "local", "User ID owning the conversation")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(ctx)

	fmt.Println("Chatting with the career coach. Type \"quit\" to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if strings.EqualFold(message, "quit") || strings.EqualFold(message, "exit") {
			break
		}

		reply := app.conv.HandleMessage(ctx, chatUser, message)
		fmt.Printf("%s\n\n", reply.Text)
	}
	return scanner.Err()
}
