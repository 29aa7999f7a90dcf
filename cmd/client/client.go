package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/fenrir-labs/lob/internal/common"
	"github.com/fenrir-labs/lob/internal/wire"
)

func main() {
	serverAddr := flag.String("server", "127.0.0.1:9001", "address of the matching server")
	action := flag.String("action", "match", "action to perform: ['match', 'modify', 'lookup', 'volume']")

	id := flag.Uint("id", 0, "order id")
	price := flag.Uint("price", 100, "limit price")
	qty := flag.Uint("qty", 10, "quantity (for match), new quantity (for modify)")
	sideStr := flag.String("side", "buy", "order side: 'buy' or 'sell'")

	flag.Parse()

	conn, err := net.Dial("tcp", *serverAddr)
	if err != nil {
		log.Fatalf("failed to connect to server at %s: %v", *serverAddr, err)
	}
	defer conn.Close()

	side := common.Buy
	if strings.ToLower(*sideStr) == "sell" {
		side = common.Sell
	}

	var buf []byte
	switch strings.ToLower(*action) {
	case "match":
		order := common.Order{Id: uint32(*id), Price: uint16(*price), Quantity: uint16(*qty), Side: side}
		buf = append([]byte{byte(wire.MatchOrder)}, wire.EncodeOrder(order)...)

	case "modify":
		req := make([]byte, wire.ModifyLen)
		binary.BigEndian.PutUint32(req[0:4], uint32(*id))
		binary.BigEndian.PutUint16(req[4:6], uint16(*qty))
		buf = append([]byte{byte(wire.ModifyOrder)}, req...)

	case "lookup":
		req := make([]byte, wire.LookupLen)
		binary.BigEndian.PutUint32(req, uint32(*id))
		buf = append([]byte{byte(wire.LookupOrder)}, req...)

	case "volume":
		req := make([]byte, wire.VolumeAtLevelLen)
		binary.BigEndian.PutUint16(req[0:2], uint16(*price))
		req[2] = byte(side)
		buf = append([]byte{byte(wire.VolumeAtLevel)}, req...)

	default:
		log.Fatalf("unknown action: %s", *action)
	}

	if _, err := conn.Write(buf); err != nil {
		log.Fatalf("failed to send request: %v", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		log.Fatalf("failed to set read deadline: %v", err)
	}

	respBuf := make([]byte, 4*1024)
	n, err := conn.Read(respBuf)
	if err != nil {
		log.Fatalf("failed to read response: %v", err)
	}

	resp, err := wire.DecodeResponse(respBuf[:n])
	if err != nil {
		log.Fatalf("failed to decode response: %v", err)
	}

	printResponse(resp)
}

func printResponse(resp wire.Response) {
	switch resp.Type {
	case wire.MatchResult:
		fmt.Printf("match_count: %d\n", resp.Value)
	case wire.OrderResult:
		fmt.Printf("exists: %t quantity: %d\n", resp.Exists, resp.Value)
	case wire.VolumeResult:
		fmt.Printf("volume: %d\n", resp.Value)
	case wire.ErrorResult:
		fmt.Fprintf(os.Stderr, "error: %s\n", resp.Err)
	}
}

