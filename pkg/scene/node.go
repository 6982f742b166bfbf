// Package scene 定义场景图协作方的能力接口以及一个内存实现
//
// 门动画编排器不拥有场景图，它只要求宿主提供三种能力：
//   - 按标签枚举子节点（找到所有门组件）
//   - 按名称查找子节点（定位左右门板）
//   - 传递性枚举刚体部件并读取其当前位置
//
// 宿主引擎通过实现 Node 和 Part 接口接入；tree.go 中的内存实现
// 用于测试和可视化验证工具。
package scene

import "github.com/decker502/doorway/pkg/utils"

// Part 刚体部件：动画的最小单位，拥有可读取的当前位置
type Part interface {
	// Name 返回部件名称
	Name() string
	// Position 返回部件当前的世界坐标（调用时实时读取，不缓存）
	Position() utils.Vec3
}

// Node 场景图节点：容器、门组件和门板模型都以 Node 形式暴露
type Node interface {
	// Name 返回节点名称
	Name() string
	// Tag 返回节点的标签（容器用它识别门组件）
	Tag() string
	// Child 按名称查找直接子节点
	Child(name string) (Node, bool)
	// ChildrenWithTag 返回所有带指定标签的直接子节点
	ChildrenWithTag(tag string) []Node
	// Parts 返回节点下（含嵌套子模型）的全部刚体部件
	// 顺序由实现决定，调用方不应依赖
	Parts() []Part
	// Anchor 返回锚点参考部件，未设置时返回 nil
	Anchor() Part
}
