// Package testing provides shared test doubles for packages that talk to a
// transport pipe.
package testing

import "io"

// Transfer is one recorded WritePipe call.
type Transfer struct {
	Endpoint byte
	Data     []byte
}

// ScriptedPipe is a transport.Pipe that replays canned input reports and
// records every write. Once the scripted reads are exhausted, ReadPipe
// returns io.EOF.
type ScriptedPipe struct {
	Reads    [][]byte
	ReadErr  error
	WriteErr error

	Writes        []Transfer
	ReadEndpoints []byte

	next int
}

func (p *ScriptedPipe) ReadPipe(endpoint byte, buf []byte) (int, error) {
	p.ReadEndpoints = append(p.ReadEndpoints, endpoint)
	if p.ReadErr != nil {
		return 0, p.ReadErr
	}
	if p.next >= len(p.Reads) {
		return 0, io.EOF
	}
	n := copy(buf, p.Reads[p.next])
	p.next++
	return n, nil
}

func (p *ScriptedPipe) WritePipe(endpoint byte, data []byte) (int, error) {
	if p.WriteErr != nil {
		return 0, p.WriteErr
	}
	p.Writes = append(p.Writes, Transfer{Endpoint: endpoint, Data: append([]byte(nil), data...)})
	return len(data), nil
}
