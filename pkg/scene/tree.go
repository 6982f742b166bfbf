package scene

import "github.com/decker502/doorway/pkg/utils"

// RigidPart Part 接口的内存实现
// 位置可写，供插值引擎在每帧推进时更新
type RigidPart struct {
	name string
	pos  utils.Vec3
}

// NewRigidPart 创建刚体部件
func NewRigidPart(name string, pos utils.Vec3) *RigidPart {
	return &RigidPart{name: name, pos: pos}
}

// Name 返回部件名称
func (p *RigidPart) Name() string {
	return p.name
}

// Position 返回部件当前位置
func (p *RigidPart) Position() utils.Vec3 {
	return p.pos
}

// SetPosition 更新部件位置
func (p *RigidPart) SetPosition(pos utils.Vec3) {
	p.pos = pos
}

// Tree Node 接口的内存实现：带标签的树节点
// 容器、门组件、门板模型均用 Tree 表示，区别只在标签和内容
type Tree struct {
	name     string
	tag      string
	children []*Tree
	parts    []*RigidPart
	anchor   *RigidPart
}

// NewTree 创建树节点
func NewTree(name, tag string) *Tree {
	return &Tree{name: name, tag: tag}
}

// Name 返回节点名称
func (t *Tree) Name() string {
	return t.name
}

// Tag 返回节点标签
func (t *Tree) Tag() string {
	return t.tag
}

// AddChild 添加子节点并返回自身（便于链式构建测试场景）
func (t *Tree) AddChild(child *Tree) *Tree {
	t.children = append(t.children, child)
	return t
}

// AddPart 添加刚体部件并返回自身
func (t *Tree) AddPart(part *RigidPart) *Tree {
	t.parts = append(t.parts, part)
	return t
}

// SetAnchor 设置锚点参考部件
// 锚点通常是 parts 之一，但接口不强制
func (t *Tree) SetAnchor(part *RigidPart) *Tree {
	t.anchor = part
	return t
}

// Child 按名称查找直接子节点
func (t *Tree) Child(name string) (Node, bool) {
	for _, c := range t.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// ChildrenWithTag 返回所有带指定标签的直接子节点
func (t *Tree) ChildrenWithTag(tag string) []Node {
	var nodes []Node
	for _, c := range t.children {
		if c.tag == tag {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// Parts 返回节点下全部刚体部件（深度优先，含嵌套子模型）
func (t *Tree) Parts() []Part {
	var parts []Part
	for _, p := range t.parts {
		parts = append(parts, p)
	}
	for _, c := range t.children {
		parts = append(parts, c.Parts()...)
	}
	return parts
}

// Anchor 返回锚点参考部件，未设置时返回 nil
func (t *Tree) Anchor() Part {
	// 显式判空，避免把有类型的 nil 指针包进接口
	if t.anchor == nil {
		return nil
	}
	return t.anchor
}

// RigidParts 返回节点下全部 *RigidPart（内存实现专用，供演示工具重置位置）
func (t *Tree) RigidParts() []*RigidPart {
	var parts []*RigidPart
	parts = append(parts, t.parts...)
	for _, c := range t.children {
		parts = append(parts, c.RigidParts()...)
	}
	return parts
}
