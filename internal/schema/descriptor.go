package schema

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Compiled-in subset of the Perfetto trace schema covering the packets the
// firmware encoder emits. Field numbers follow the upstream
// perfetto_trace.proto and must never be renumbered.
func builtinFileDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("perfetto_trace.proto"),
		Package: proto.String("perfetto.protos"),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			traceMessage(),
			tracePacketMessage(),
			trackDescriptorMessage(),
			processDescriptorMessage(),
			threadDescriptorMessage(),
			trackEventMessage(),
			internedDataMessage(),
			eventCategoryMessage(),
			eventNameMessage(),
		},
	}
}

func traceMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("Trace"),
		Field: []*descriptorpb.FieldDescriptorProto{
			repeatedMessageField("packet", 1, "TracePacket"),
		},
	}
}

func tracePacketMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("TracePacket"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalarField("timestamp", 8, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			scalarField("trusted_packet_sequence_id", 10, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
			messageField("track_event", 11, "TrackEvent"),
			messageField("interned_data", 12, "InternedData"),
			scalarField("sequence_flags", 13, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
			messageField("track_descriptor", 60, "TrackDescriptor"),
		},
	}
}

func trackDescriptorMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("TrackDescriptor"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalarField("uuid", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			scalarField("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
			messageField("process", 3, "ProcessDescriptor"),
			messageField("thread", 4, "ThreadDescriptor"),
			scalarField("parent_uuid", 5, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
		},
	}
}

func processDescriptorMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("ProcessDescriptor"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalarField("pid", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32),
			scalarField("process_name", 6, descriptorpb.FieldDescriptorProto_TYPE_STRING),
		},
	}
}

func threadDescriptorMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("ThreadDescriptor"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalarField("pid", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32),
			scalarField("tid", 2, descriptorpb.FieldDescriptorProto_TYPE_INT32),
			scalarField("thread_name", 5, descriptorpb.FieldDescriptorProto_TYPE_STRING),
		},
	}
}

func trackEventMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("TrackEvent"),
		Field: []*descriptorpb.FieldDescriptorProto{
			repeatedScalarField("category_iids", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			enumField("type", 9, "TrackEvent.Type"),
			scalarField("name_iid", 10, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			scalarField("track_uuid", 11, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			scalarField("name", 23, descriptorpb.FieldDescriptorProto_TYPE_STRING),
			scalarField("counter_value", 30, descriptorpb.FieldDescriptorProto_TYPE_INT64),
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{
				Name: proto.String("Type"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					enumValue("TYPE_UNSPECIFIED", 0),
					enumValue("TYPE_SLICE_BEGIN", 1),
					enumValue("TYPE_SLICE_END", 2),
					enumValue("TYPE_INSTANT", 3),
					enumValue("TYPE_COUNTER", 4),
				},
			},
		},
	}
}

func internedDataMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("InternedData"),
		Field: []*descriptorpb.FieldDescriptorProto{
			repeatedMessageField("event_categories", 1, "EventCategory"),
			repeatedMessageField("event_names", 2, "EventName"),
		},
	}
}

func eventCategoryMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("EventCategory"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalarField("iid", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			scalarField("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
		},
	}
}

func eventNameMessage() *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String("EventName"),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalarField("iid", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			scalarField("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
		},
	}
}

func scalarField(name string, num int32, t descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   t.Enum(),
	}
}

func repeatedScalarField(name string, num int32, t descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, num, t)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func messageField(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(".perfetto.protos." + typeName),
	}
}

func repeatedMessageField(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := messageField(name, num, typeName)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func enumField(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum(),
		TypeName: proto.String(".perfetto.protos." + typeName),
	}
}

func enumValue(name string, num int32) *descriptorpb.EnumValueDescriptorProto {
	return &descriptorpb.EnumValueDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
	}
}
