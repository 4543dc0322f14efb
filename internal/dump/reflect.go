package dump

import "google.golang.org/protobuf/reflect/protoreflect"

// Field access by name against whatever schema the message was decoded with.
// A nil descriptor means the loaded schema predates the field; absence is a
// normal printable state, never an error.

func fieldByName(m protoreflect.Message, name string) protoreflect.FieldDescriptor {
	return m.Descriptor().Fields().ByName(protoreflect.Name(name))
}

func hasField(m protoreflect.Message, name string) bool {
	fd := fieldByName(m, name)
	return fd != nil && m.Has(fd)
}

func uintField(m protoreflect.Message, name string) (uint64, bool) {
	fd := fieldByName(m, name)
	if fd == nil || !m.Has(fd) {
		return 0, false
	}
	return m.Get(fd).Uint(), true
}

func intField(m protoreflect.Message, name string) (int64, bool) {
	fd := fieldByName(m, name)
	if fd == nil || !m.Has(fd) {
		return 0, false
	}
	return m.Get(fd).Int(), true
}

func stringField(m protoreflect.Message, name string) (string, bool) {
	fd := fieldByName(m, name)
	if fd == nil || !m.Has(fd) {
		return "", false
	}
	return m.Get(fd).String(), true
}

func messageField(m protoreflect.Message, name string) (protoreflect.Message, bool) {
	fd := fieldByName(m, name)
	if fd == nil || fd.Message() == nil || fd.IsList() || !m.Has(fd) {
		return nil, false
	}
	return m.Get(fd).Message(), true
}

// uintValue and friends read a field with its default when unset, for spots
// where the original dump prints the zero value rather than omitting the line.

func uintValue(m protoreflect.Message, name string) uint64 {
	fd := fieldByName(m, name)
	if fd == nil {
		return 0
	}
	return m.Get(fd).Uint()
}

func intValue(m protoreflect.Message, name string) int64 {
	fd := fieldByName(m, name)
	if fd == nil {
		return 0
	}
	return m.Get(fd).Int()
}

func stringValue(m protoreflect.Message, name string) string {
	fd := fieldByName(m, name)
	if fd == nil {
		return ""
	}
	return m.Get(fd).String()
}

func uintList(m protoreflect.Message, name string) []uint64 {
	fd := fieldByName(m, name)
	if fd == nil || !fd.IsList() {
		return nil
	}
	list := m.Get(fd).List()
	out := make([]uint64, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, list.Get(i).Uint())
	}
	return out
}

func messageList(m protoreflect.Message, name string) []protoreflect.Message {
	fd := fieldByName(m, name)
	if fd == nil || !fd.IsList() || fd.Message() == nil {
		return nil
	}
	list := m.Get(fd).List()
	out := make([]protoreflect.Message, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, list.Get(i).Message())
	}
	return out
}
