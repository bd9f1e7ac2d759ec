package configuratorv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "configurator.api.v1alpha1.ConfiguratorService"

// Full method names
const (
	ConfiguratorService_CreateSession_FullMethodName         = "/configurator.api.v1alpha1.ConfiguratorService/CreateSession"
	ConfiguratorService_GetSession_FullMethodName            = "/configurator.api.v1alpha1.ConfiguratorService/GetSession"
	ConfiguratorService_CloseSession_FullMethodName          = "/configurator.api.v1alpha1.ConfiguratorService/CloseSession"
	ConfiguratorService_SetEquipment_FullMethodName          = "/configurator.api.v1alpha1.ConfiguratorService/SetEquipment"
	ConfiguratorService_SetAnimal_FullMethodName             = "/configurator.api.v1alpha1.ConfiguratorService/SetAnimal"
	ConfiguratorService_ResetSession_FullMethodName          = "/configurator.api.v1alpha1.ConfiguratorService/ResetSession"
	ConfiguratorService_RandomizeSession_FullMethodName      = "/configurator.api.v1alpha1.ConfiguratorService/RandomizeSession"
	ConfiguratorService_GetStats_FullMethodName              = "/configurator.api.v1alpha1.ConfiguratorService/GetStats"
	ConfiguratorService_RecommendPiece_FullMethodName        = "/configurator.api.v1alpha1.ConfiguratorService/RecommendPiece"
	ConfiguratorService_ListEquipment_FullMethodName         = "/configurator.api.v1alpha1.ConfiguratorService/ListEquipment"
	ConfiguratorService_AddToComparison_FullMethodName       = "/configurator.api.v1alpha1.ConfiguratorService/AddToComparison"
	ConfiguratorService_RemoveFromComparison_FullMethodName  = "/configurator.api.v1alpha1.ConfiguratorService/RemoveFromComparison"
	ConfiguratorService_RestoreFromComparison_FullMethodName = "/configurator.api.v1alpha1.ConfiguratorService/RestoreFromComparison"
	ConfiguratorService_SetComparisonCapacity_FullMethodName = "/configurator.api.v1alpha1.ConfiguratorService/SetComparisonCapacity"
	ConfiguratorService_GetComparison_FullMethodName         = "/configurator.api.v1alpha1.ConfiguratorService/GetComparison"
	ConfiguratorService_SaveBuild_FullMethodName             = "/configurator.api.v1alpha1.ConfiguratorService/SaveBuild"
	ConfiguratorService_LoadBuild_FullMethodName             = "/configurator.api.v1alpha1.ConfiguratorService/LoadBuild"
	ConfiguratorService_ListBuilds_FullMethodName            = "/configurator.api.v1alpha1.ConfiguratorService/ListBuilds"
	ConfiguratorService_DeleteBuild_FullMethodName           = "/configurator.api.v1alpha1.ConfiguratorService/DeleteBuild"
)

// ConfiguratorServiceServer is the server API for ConfiguratorService
type ConfiguratorServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	CloseSession(context.Context, *CloseSessionRequest) (*CloseSessionResponse, error)
	SetEquipment(context.Context, *SetEquipmentRequest) (*SetEquipmentResponse, error)
	SetAnimal(context.Context, *SetAnimalRequest) (*SetAnimalResponse, error)
	ResetSession(context.Context, *ResetSessionRequest) (*ResetSessionResponse, error)
	RandomizeSession(context.Context, *RandomizeSessionRequest) (*RandomizeSessionResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	RecommendPiece(context.Context, *RecommendPieceRequest) (*RecommendPieceResponse, error)
	ListEquipment(context.Context, *ListEquipmentRequest) (*ListEquipmentResponse, error)
	AddToComparison(context.Context, *AddToComparisonRequest) (*AddToComparisonResponse, error)
	RemoveFromComparison(context.Context, *RemoveFromComparisonRequest) (*RemoveFromComparisonResponse, error)
	RestoreFromComparison(context.Context, *RestoreFromComparisonRequest) (*RestoreFromComparisonResponse, error)
	SetComparisonCapacity(context.Context, *SetComparisonCapacityRequest) (*SetComparisonCapacityResponse, error)
	GetComparison(context.Context, *GetComparisonRequest) (*GetComparisonResponse, error)
	SaveBuild(context.Context, *SaveBuildRequest) (*SaveBuildResponse, error)
	LoadBuild(context.Context, *LoadBuildRequest) (*LoadBuildResponse, error)
	ListBuilds(context.Context, *ListBuildsRequest) (*ListBuildsResponse, error)
	DeleteBuild(context.Context, *DeleteBuildRequest) (*DeleteBuildResponse, error)
}

// UnimplementedConfiguratorServiceServer answers every method with Unimplemented.
// Embed it by value to stay forward compatible.
type UnimplementedConfiguratorServiceServer struct{}

func (UnimplementedConfiguratorServiceServer) CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSession not implemented")
}

func (UnimplementedConfiguratorServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}

func (UnimplementedConfiguratorServiceServer) CloseSession(context.Context, *CloseSessionRequest) (*CloseSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CloseSession not implemented")
}

func (UnimplementedConfiguratorServiceServer) SetEquipment(context.Context, *SetEquipmentRequest) (*SetEquipmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetEquipment not implemented")
}

func (UnimplementedConfiguratorServiceServer) SetAnimal(context.Context, *SetAnimalRequest) (*SetAnimalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetAnimal not implemented")
}

func (UnimplementedConfiguratorServiceServer) ResetSession(context.Context, *ResetSessionRequest) (*ResetSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetSession not implemented")
}

func (UnimplementedConfiguratorServiceServer) RandomizeSession(context.Context, *RandomizeSessionRequest) (*RandomizeSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RandomizeSession not implemented")
}

func (UnimplementedConfiguratorServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

func (UnimplementedConfiguratorServiceServer) RecommendPiece(context.Context, *RecommendPieceRequest) (*RecommendPieceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecommendPiece not implemented")
}

func (UnimplementedConfiguratorServiceServer) ListEquipment(context.Context, *ListEquipmentRequest) (*ListEquipmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEquipment not implemented")
}

func (UnimplementedConfiguratorServiceServer) AddToComparison(context.Context, *AddToComparisonRequest) (*AddToComparisonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddToComparison not implemented")
}

func (UnimplementedConfiguratorServiceServer) RemoveFromComparison(context.Context, *RemoveFromComparisonRequest) (*RemoveFromComparisonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveFromComparison not implemented")
}

func (UnimplementedConfiguratorServiceServer) RestoreFromComparison(context.Context, *RestoreFromComparisonRequest) (*RestoreFromComparisonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RestoreFromComparison not implemented")
}

func (UnimplementedConfiguratorServiceServer) SetComparisonCapacity(context.Context, *SetComparisonCapacityRequest) (*SetComparisonCapacityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetComparisonCapacity not implemented")
}

func (UnimplementedConfiguratorServiceServer) GetComparison(context.Context, *GetComparisonRequest) (*GetComparisonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetComparison not implemented")
}

func (UnimplementedConfiguratorServiceServer) SaveBuild(context.Context, *SaveBuildRequest) (*SaveBuildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveBuild not implemented")
}

func (UnimplementedConfiguratorServiceServer) LoadBuild(context.Context, *LoadBuildRequest) (*LoadBuildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LoadBuild not implemented")
}

func (UnimplementedConfiguratorServiceServer) ListBuilds(context.Context, *ListBuildsRequest) (*ListBuildsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBuilds not implemented")
}

func (UnimplementedConfiguratorServiceServer) DeleteBuild(context.Context, *DeleteBuildRequest) (*DeleteBuildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteBuild not implemented")
}

// RegisterConfiguratorServiceServer registers srv on s
func RegisterConfiguratorServiceServer(s grpc.ServiceRegistrar, srv ConfiguratorServiceServer) {
	s.RegisterService(&ConfiguratorService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	method string,
	call func(ConfiguratorServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ConfiguratorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ConfiguratorServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ConfiguratorService_ServiceDesc describes ConfiguratorService for grpc.ServiceRegistrar
var ConfiguratorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConfiguratorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSession",
			Handler:    unaryHandler(ConfiguratorService_CreateSession_FullMethodName, ConfiguratorServiceServer.CreateSession),
		},
		{
			MethodName: "GetSession",
			Handler:    unaryHandler(ConfiguratorService_GetSession_FullMethodName, ConfiguratorServiceServer.GetSession),
		},
		{
			MethodName: "CloseSession",
			Handler:    unaryHandler(ConfiguratorService_CloseSession_FullMethodName, ConfiguratorServiceServer.CloseSession),
		},
		{
			MethodName: "SetEquipment",
			Handler:    unaryHandler(ConfiguratorService_SetEquipment_FullMethodName, ConfiguratorServiceServer.SetEquipment),
		},
		{
			MethodName: "SetAnimal",
			Handler:    unaryHandler(ConfiguratorService_SetAnimal_FullMethodName, ConfiguratorServiceServer.SetAnimal),
		},
		{
			MethodName: "ResetSession",
			Handler:    unaryHandler(ConfiguratorService_ResetSession_FullMethodName, ConfiguratorServiceServer.ResetSession),
		},
		{
			MethodName: "RandomizeSession",
			Handler:    unaryHandler(ConfiguratorService_RandomizeSession_FullMethodName, ConfiguratorServiceServer.RandomizeSession),
		},
		{
			MethodName: "GetStats",
			Handler:    unaryHandler(ConfiguratorService_GetStats_FullMethodName, ConfiguratorServiceServer.GetStats),
		},
		{
			MethodName: "RecommendPiece",
			Handler:    unaryHandler(ConfiguratorService_RecommendPiece_FullMethodName, ConfiguratorServiceServer.RecommendPiece),
		},
		{
			MethodName: "ListEquipment",
			Handler:    unaryHandler(ConfiguratorService_ListEquipment_FullMethodName, ConfiguratorServiceServer.ListEquipment),
		},
		{
			MethodName: "AddToComparison",
			Handler:    unaryHandler(ConfiguratorService_AddToComparison_FullMethodName, ConfiguratorServiceServer.AddToComparison),
		},
		{
			MethodName: "RemoveFromComparison",
			Handler:    unaryHandler(ConfiguratorService_RemoveFromComparison_FullMethodName, ConfiguratorServiceServer.RemoveFromComparison),
		},
		{
			MethodName: "RestoreFromComparison",
			Handler:    unaryHandler(ConfiguratorService_RestoreFromComparison_FullMethodName, ConfiguratorServiceServer.RestoreFromComparison),
		},
		{
			MethodName: "SetComparisonCapacity",
			Handler:    unaryHandler(ConfiguratorService_SetComparisonCapacity_FullMethodName, ConfiguratorServiceServer.SetComparisonCapacity),
		},
		{
			MethodName: "GetComparison",
			Handler:    unaryHandler(ConfiguratorService_GetComparison_FullMethodName, ConfiguratorServiceServer.GetComparison),
		},
		{
			MethodName: "SaveBuild",
			Handler:    unaryHandler(ConfiguratorService_SaveBuild_FullMethodName, ConfiguratorServiceServer.SaveBuild),
		},
		{
			MethodName: "LoadBuild",
			Handler:    unaryHandler(ConfiguratorService_LoadBuild_FullMethodName, ConfiguratorServiceServer.LoadBuild),
		},
		{
			MethodName: "ListBuilds",
			Handler:    unaryHandler(ConfiguratorService_ListBuilds_FullMethodName, ConfiguratorServiceServer.ListBuilds),
		},
		{
			MethodName: "DeleteBuild",
			Handler:    unaryHandler(ConfiguratorService_DeleteBuild_FullMethodName, ConfiguratorServiceServer.DeleteBuild),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "configurator/v1alpha1/configurator.json",
}

// ConfiguratorServiceClient is the client API for ConfiguratorService
type ConfiguratorServiceClient interface {
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error)
	SetEquipment(ctx context.Context, in *SetEquipmentRequest, opts ...grpc.CallOption) (*SetEquipmentResponse, error)
	SetAnimal(ctx context.Context, in *SetAnimalRequest, opts ...grpc.CallOption) (*SetAnimalResponse, error)
	ResetSession(ctx context.Context, in *ResetSessionRequest, opts ...grpc.CallOption) (*ResetSessionResponse, error)
	RandomizeSession(ctx context.Context, in *RandomizeSessionRequest, opts ...grpc.CallOption) (*RandomizeSessionResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
	RecommendPiece(ctx context.Context, in *RecommendPieceRequest, opts ...grpc.CallOption) (*RecommendPieceResponse, error)
	ListEquipment(ctx context.Context, in *ListEquipmentRequest, opts ...grpc.CallOption) (*ListEquipmentResponse, error)
	AddToComparison(ctx context.Context, in *AddToComparisonRequest, opts ...grpc.CallOption) (*AddToComparisonResponse, error)
	RemoveFromComparison(ctx context.Context, in *RemoveFromComparisonRequest, opts ...grpc.CallOption) (*RemoveFromComparisonResponse, error)
	RestoreFromComparison(ctx context.Context, in *RestoreFromComparisonRequest, opts ...grpc.CallOption) (*RestoreFromComparisonResponse, error)
	SetComparisonCapacity(ctx context.Context, in *SetComparisonCapacityRequest, opts ...grpc.CallOption) (*SetComparisonCapacityResponse, error)
	GetComparison(ctx context.Context, in *GetComparisonRequest, opts ...grpc.CallOption) (*GetComparisonResponse, error)
	SaveBuild(ctx context.Context, in *SaveBuildRequest, opts ...grpc.CallOption) (*SaveBuildResponse, error)
	LoadBuild(ctx context.Context, in *LoadBuildRequest, opts ...grpc.CallOption) (*LoadBuildResponse, error)
	ListBuilds(ctx context.Context, in *ListBuildsRequest, opts ...grpc.CallOption) (*ListBuildsResponse, error)
	DeleteBuild(ctx context.Context, in *DeleteBuildRequest, opts ...grpc.CallOption) (*DeleteBuildResponse, error)
}

type configuratorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewConfiguratorServiceClient creates a client. Calls use the JSON codec.
func NewConfiguratorServiceClient(cc grpc.ClientConnInterface) ConfiguratorServiceClient {
	return &configuratorServiceClient{cc: cc}
}

func (c *configuratorServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error) {
	out := new(CreateSessionResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_CreateSession_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	out := new(GetSessionResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_GetSession_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error) {
	out := new(CloseSessionResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_CloseSession_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) SetEquipment(ctx context.Context, in *SetEquipmentRequest, opts ...grpc.CallOption) (*SetEquipmentResponse, error) {
	out := new(SetEquipmentResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_SetEquipment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) SetAnimal(ctx context.Context, in *SetAnimalRequest, opts ...grpc.CallOption) (*SetAnimalResponse, error) {
	out := new(SetAnimalResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_SetAnimal_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) ResetSession(ctx context.Context, in *ResetSessionRequest, opts ...grpc.CallOption) (*ResetSessionResponse, error) {
	out := new(ResetSessionResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_ResetSession_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) RandomizeSession(ctx context.Context, in *RandomizeSessionRequest, opts ...grpc.CallOption) (*RandomizeSessionResponse, error) {
	out := new(RandomizeSessionResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_RandomizeSession_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	out := new(GetStatsResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_GetStats_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) RecommendPiece(ctx context.Context, in *RecommendPieceRequest, opts ...grpc.CallOption) (*RecommendPieceResponse, error) {
	out := new(RecommendPieceResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_RecommendPiece_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) ListEquipment(ctx context.Context, in *ListEquipmentRequest, opts ...grpc.CallOption) (*ListEquipmentResponse, error) {
	out := new(ListEquipmentResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_ListEquipment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) AddToComparison(ctx context.Context, in *AddToComparisonRequest, opts ...grpc.CallOption) (*AddToComparisonResponse, error) {
	out := new(AddToComparisonResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_AddToComparison_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) RemoveFromComparison(ctx context.Context, in *RemoveFromComparisonRequest, opts ...grpc.CallOption) (*RemoveFromComparisonResponse, error) {
	out := new(RemoveFromComparisonResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_RemoveFromComparison_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) RestoreFromComparison(ctx context.Context, in *RestoreFromComparisonRequest, opts ...grpc.CallOption) (*RestoreFromComparisonResponse, error) {
	out := new(RestoreFromComparisonResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_RestoreFromComparison_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) SetComparisonCapacity(ctx context.Context, in *SetComparisonCapacityRequest, opts ...grpc.CallOption) (*SetComparisonCapacityResponse, error) {
	out := new(SetComparisonCapacityResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_SetComparisonCapacity_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) GetComparison(ctx context.Context, in *GetComparisonRequest, opts ...grpc.CallOption) (*GetComparisonResponse, error) {
	out := new(GetComparisonResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_GetComparison_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) SaveBuild(ctx context.Context, in *SaveBuildRequest, opts ...grpc.CallOption) (*SaveBuildResponse, error) {
	out := new(SaveBuildResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_SaveBuild_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) LoadBuild(ctx context.Context, in *LoadBuildRequest, opts ...grpc.CallOption) (*LoadBuildResponse, error) {
	out := new(LoadBuildResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_LoadBuild_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) ListBuilds(ctx context.Context, in *ListBuildsRequest, opts ...grpc.CallOption) (*ListBuildsResponse, error) {
	out := new(ListBuildsResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_ListBuilds_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configuratorServiceClient) DeleteBuild(ctx context.Context, in *DeleteBuildRequest, opts ...grpc.CallOption) (*DeleteBuildResponse, error) {
	out := new(DeleteBuildResponse)
	if err := c.cc.Invoke(ctx, ConfiguratorService_DeleteBuild_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}
