package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leon37/NetoLedger/internal/api/middleware"
	"github.com/spf13/cobra"
)

func callCmd() *cobra.Command {
	var server, locale, question string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "call classify <description> | call resume <uid>",
		Short: "Send a request to a running NetoLedger server",
		Example: `  netoctl call classify "Mercadona compra semanal"
  netoctl call resume u-123 -q "¿Cómo voy?" --server http://localhost:5000`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			payload := map[string]string{}
			if locale != "" {
				payload["locale"] = locale
			}

			switch args[0] {
			case "classify":
				path = "/classify"
				payload["description"] = strings.Join(args[1:], " ")
			case "resume":
				path = "/networthResume"
				payload["uid"] = args[1]
				if question != "" {
					payload["user_question"] = question
				}
			default:
				return fmt.Errorf("unknown endpoint %q (want classify or resume)", args[0])
			}

			client := &http.Client{Timeout: timeout}
			status, body, err := post(cmd, client, strings.TrimRight(server, "/")+path, payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "HTTP %d\n", status)

			var pretty bytes.Buffer
			if json.Indent(&pretty, body, "", "  ") == nil {
				body = append(pretty.Bytes(), '\n')
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://localhost:5000", "server base URL")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "answer locale")
	cmd.Flags().StringVarP(&question, "question", "q", "", "question for resume")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "request timeout")
	return cmd
}

func post(cmd *cobra.Command, client *http.Client, url string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
