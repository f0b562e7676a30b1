package billdetail

// Result is the uniform envelope returned by every read and write
// operation. Callers inspect Success before using Data; Msg is a
// human-readable string, not a typed discriminant.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// Status is the envelope for pure deletes, which carry no data.
type Status struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](msg string) Result[T] {
	return Result[T]{Msg: msg}
}

func okStatus() Status {
	return Status{Success: true}
}

func failStatus(msg string) Status {
	return Status{Msg: msg}
}
