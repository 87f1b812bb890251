package service

import (
	"context"
	"fmt"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
)

// walkToRoot follows parent links upward and returns the root with its distance from msg.
func walkToRoot(ctx context.Context, gw Gateway, msg *dbmysql.Message) (*dbmysql.Message, int, error) {
	visited := map[string]bool{msg.ID: true}
	cur := msg
	depth := 0
	for cur.ParentMessageID != nil {
		parentID := *cur.ParentMessageID
		if visited[parentID] {
			return nil, 0, fmt.Errorf("message %s: %w", msg.ID, common.ErrThreadCycle)
		}
		visited[parentID] = true

		parent, err := gw.MessageByID(ctx, parentID)
		if err != nil {
			return nil, 0, err
		}
		cur = parent
		depth++
	}
	return cur, depth, nil
}

func (s *ChatService) GetRoot(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	msg, err := s.gw.MessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	root, _, err := walkToRoot(ctx, s.gw, msg)
	return root, err
}

// GetDepth is 0 for a root message and 1 for a direct reply.
func (s *ChatService) GetDepth(ctx context.Context, messageID string) (int, error) {
	msg, err := s.gw.MessageByID(ctx, messageID)
	if err != nil {
		return 0, err
	}
	_, depth, err := walkToRoot(ctx, s.gw, msg)
	return depth, err
}

// GetThreadMessages returns the thread root followed by its direct replies, oldest first.
// Deeper replies are not flattened into the thread.
func (s *ChatService) GetThreadMessages(ctx context.Context, actorID, messageID string) ([]*dbmysql.Message, error) {
	msg, err := s.gw.MessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	root, _, err := walkToRoot(ctx, s.gw, msg)
	if err != nil {
		return nil, err
	}
	if !common.IsParticipant(root, actorID) {
		return nil, fmt.Errorf("thread %s: %w", root.ID, common.ErrForbidden)
	}

	replies, err := s.gw.QueryMessages(ctx, MessageFilter{ParentIDs: []string{root.ID}})
	if err != nil {
		return nil, err
	}
	return append([]*dbmysql.Message{root}, replies...), nil
}

// GetThreadsForUser lists every root the user takes part in, newest first, with direct replies attached.
func (s *ChatService) GetThreadsForUser(ctx context.Context, userID string) ([]*dbmysql.Message, error) {
	roots, err := s.gw.QueryMessages(ctx, MessageFilter{
		Participant: userID,
		RootsOnly:   true,
		NewestFirst: true,
	})
	if err != nil {
		return nil, err
	}
	return roots, s.attachReplies(ctx, roots)
}

// GetThreadedConversations lists the roots exchanged between exactly userA and userB.
func (s *ChatService) GetThreadedConversations(ctx context.Context, userA, userB string) ([]*dbmysql.Message, error) {
	if _, err := s.gw.UserByID(ctx, userB); err != nil {
		return nil, err
	}

	roots, err := s.gw.QueryMessages(ctx, MessageFilter{
		Pair:        &common.Conversation{UserA: userA, UserB: userB},
		RootsOnly:   true,
		NewestFirst: true,
	})
	if err != nil {
		return nil, err
	}
	return roots, s.attachReplies(ctx, roots)
}

func (s *ChatService) attachReplies(ctx context.Context, roots []*dbmysql.Message) error {
	if len(roots) == 0 {
		return nil
	}

	byID := make(map[string]*dbmysql.Message, len(roots))
	ids := make([]string, len(roots))
	for i, r := range roots {
		byID[r.ID] = r
		ids[i] = r.ID
		r.Replies = []*dbmysql.Message{}
	}

	replies, err := s.gw.QueryMessages(ctx, MessageFilter{ParentIDs: ids})
	if err != nil {
		return err
	}
	for _, reply := range replies {
		if parent, ok := byID[*reply.ParentMessageID]; ok {
			parent.Replies = append(parent.Replies, reply)
		}
	}
	return nil
}
