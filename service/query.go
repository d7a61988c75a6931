package service

import (
	"context"
	"fmt"

	"github.com/to404hanga/hydro_gateway/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findAll 执行一次查询并把每个文档转换为响应项, 结果保持数据库返回的自然顺序
func findAll[D any, R any](ctx context.Context, coll *mongo.Collection, filter, projection bson.D, required []string, shape func(doc *D) R) ([]R, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("find %s failed: %w", coll.Name(), err)
	}
	defer cur.Close(context.WithoutCancel(ctx))

	result := make([]R, 0)
	for cur.Next(ctx) {
		if err = model.RequireFields(cur.Current, required...); err != nil {
			return nil, fmt.Errorf("document %s in %s: %w", model.Stringify(cur.Current.Lookup("_id")), coll.Name(), err)
		}
		var doc D
		if err = cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s failed: %w", coll.Name(), err)
		}
		result = append(result, shape(&doc))
	}
	if err = cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s failed: %w", coll.Name(), err)
	}
	return result, nil
}
