package mir

// ReversePostorder returns the blocks reachable from the entry in reverse
// postorder: each block is listed before its successors except along back
// edges. Unreachable blocks do not appear. The body must be valid (see
// Body.Validate).
func ReversePostorder(body *Body) []BlockID {
	if len(body.Blocks) == 0 {
		return nil
	}

	type frame struct {
		id   BlockID
		next int
	}

	visited := make([]bool, len(body.Blocks))
	visited[0] = true
	stack := []frame{{id: 0}}
	var post []BlockID

	for len(stack) > 0 {
		top := len(stack) - 1
		succs := body.Blocks[stack[top].id].Terminator.Successors()
		if stack[top].next < len(succs) {
			succ := succs[stack[top].next]
			stack[top].next++
			if !visited[succ] {
				visited[succ] = true
				stack = append(stack, frame{id: succ})
			}
			continue
		}
		post = append(post, stack[top].id)
		stack = stack[:top]
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}
