package encoding

// Encode converts s to bytes using enc, applying trap to any
// character enc cannot represent. It is the non-streaming convenience
// wrapper around RawEncoder's incremental contract: RawFeed over the
// remaining input, repeated after each error the trap recovers from,
// followed by RawFinish. label names the target
// encoding for any *DriverError a Strict-like trap produces.
func Encode(enc RawEncoder, label string, trap Trap, s string) ([]byte, error) {
	input := []rune(s)
	sink := NewByteSink(len(input))
	offset := 0
	for len(input) > 0 {
		n, cerr := enc.RawFeed(input, sink)
		if cerr == nil {
			offset += n
			input = input[n:]
			break
		}
		offset += n
		bad := input[n]
		input = input[n+1:]
		recovered, handleErr := trap.HandleEncode(bad, sink)
		if recovered {
			offset++
			continue
		}
		if handleErr == nil {
			handleErr = ErrUnrepresentable
		}
		return sink.Bytes, &DriverError{Op: "encode", Label: label, Upto: offset, Len: 1, Reason: cerr.Cause}
	}
	if cerr := enc.RawFinish(sink); cerr != nil {
		recovered, handleErr := trap.HandleEncode(0, sink)
		if !recovered {
			if handleErr == nil {
				handleErr = ErrUnrepresentable
			}
			return sink.Bytes, &DriverError{Op: "encode", Label: label, Upto: offset, Len: cerr.Len, Reason: cerr.Cause}
		}
	}
	return sink.Bytes, nil
}

// Decode converts b to a string using dec, applying trap to any byte
// sequence dec cannot interpret. label names the source encoding for
// any *DriverError a Strict-like trap produces.
func Decode(dec RawDecoder, label string, trap Trap, b []byte) (string, error) {
	input := b
	sink := NewStringSink(len(input))
	offset := 0
	for len(input) > 0 {
		n, cerr := dec.RawFeed(input, sink)
		if cerr == nil {
			offset += n
			input = input[n:]
			break
		}
		bad := input[cerr.Upto : cerr.Upto+cerr.Len]
		offset += cerr.Upto
		input = input[cerr.Upto+cerr.Len:]
		recovered, handleErr := trap.HandleDecode(bad, sink)
		if recovered {
			offset += cerr.Len
			continue
		}
		if handleErr == nil {
			handleErr = ErrInvalidSequence
		}
		return sink.String(), &DriverError{Op: "decode", Label: label, Upto: offset, Len: cerr.Len, Reason: cerr.Cause}
	}
	if cerr := dec.RawFinish(sink); cerr != nil {
		recovered, handleErr := trap.HandleDecode(nil, sink)
		if !recovered {
			if handleErr == nil {
				handleErr = ErrInvalidSequence
			}
			return sink.String(), &DriverError{Op: "decode", Label: label, Upto: offset, Len: cerr.Len, Reason: cerr.Cause}
		}
	}
	return sink.String(), nil
}
