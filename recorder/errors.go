package recorder

// error messages of the recorder package.
const (
	ErrRecording          = "recorder"
	ErrRecordingTruncated = "recorder: output truncated"
	ErrRecorderEnded      = "recorder: recording has ended"
	ErrPlayback           = "playback"
	ErrHeader             = "playback: not a transcript"
	ErrVersion            = "playback: unsupported transcript version %d"
	ErrFieldCount         = "playback: expected %d fields at line %d"
	ErrField              = "playback: bad %s field at line %d, col %d"
	ErrFrameOrder         = "playback: frame %d follows frame %d at line %d"
)
