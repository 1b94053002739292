package node

import "zigbee-go-zcl/internal/zcl"

// candidates returns the descriptors that may describe f. Command ids repeat
// across global, cluster-specific, response and manufacturer-specific
// commands, so a frame is matched on three predicates:
//   - the global flag is the inverse of the clusterSpecific bit
//   - a cluster-specific command is manufacturer specific exactly when the
//     frame is
//   - a manufacturer-specific frame carries the command's manufacturer id
func candidates(def *zcl.ClusterDef, f *zcl.Frame) []*zcl.CommandDef {
	var out []*zcl.CommandDef
	for _, cmd := range def.CommandsByID(f.CommandID) {
		if f.ClusterSpecific == cmd.Global {
			continue
		}
		if !cmd.Global && f.ManufacturerSpecific != (cmd.ManufacturerID != 0) {
			continue
		}
		if !cmd.Global && f.ManufacturerSpecific && f.ManufacturerID != cmd.ManufacturerID {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

// toClient reports the direction a descriptor travels in. Commands without
// a declared direction go to the server and their responses come back.
func toClient(cmd *zcl.CommandDef) bool {
	switch cmd.Direction {
	case zcl.DirectionToClient:
		return true
	case zcl.DirectionToServer:
		return false
	}
	return cmd.IsResponse
}

// pick chooses among candidates. A descriptor travelling in the frame's
// direction wins; among those the response-shaped one wins when
// preferResponse is set and the request-shaped one otherwise. Remaining
// ties go to the last declared descriptor.
func pick(cands []*zcl.CommandDef, frameToClient, preferResponse bool) *zcl.CommandDef {
	var best *zcl.CommandDef
	bestScore := -1
	for _, cmd := range cands {
		score := 0
		if toClient(cmd) == frameToClient {
			score += 2
		}
		if cmd.IsResponse == preferResponse {
			score++
		}
		if score >= bestScore {
			best, bestScore = cmd, score
		}
	}
	return best
}

// reply is a cluster-specific response produced by a handler.
type reply struct {
	cmd  *zcl.CommandDef
	data []byte
}

func encodeReply(cmd *zcl.CommandDef, res zcl.Args) (*reply, error) {
	if res == nil || !cmd.HasResponse() {
		return nil, nil
	}
	data, err := cmd.Response.ArgsType().Encode(res)
	if err != nil {
		return nil, err
	}
	return &reply{cmd: cmd.Response, data: data}, nil
}
