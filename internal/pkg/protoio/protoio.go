// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package protoio provides functions for reading and writing proto messages as
// newline-delimited JSON.
package protoio

import (
	"bufio"
	"bytes"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// WriteMessageJSON writes a single proto message as one line of JSON.
func WriteMessageJSON(writer io.Writer, message proto.Message) error {
	data, err := protojsonMarshal(message)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = writer.Write(data)
	return err
}

// WriteMessagesJSON writes multiple proto messages as newline-separated JSON.
func WriteMessagesJSON[M proto.Message](writer io.Writer, messages []M) error {
	var buf bytes.Buffer
	for _, message := range messages {
		data, err := protojsonMarshal(message)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	_, err := writer.Write(buf.Bytes())
	return err
}

// ReadMessagesJSON reads newline-separated JSON proto messages.
//
// Blank lines are skipped.
func ReadMessagesJSON[M proto.Message](reader io.Reader, newMessage func() M) ([]M, error) {
	var messages []M
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		message := newMessage()
		if err := protojsonUnmarshal(line, message); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// protojsonMarshal marshals a proto message to single-line JSON using proto field names.
func protojsonMarshal(message proto.Message) ([]byte, error) {
	return (protojson.MarshalOptions{UseProtoNames: true}).Marshal(message)
}

// protojsonUnmarshal unmarshals JSON data into a proto message.
func protojsonUnmarshal(data []byte, message proto.Message) error {
	return (protojson.UnmarshalOptions{}).Unmarshal(data, message)
}
