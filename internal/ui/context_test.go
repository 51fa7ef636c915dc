package ui

import "testing"

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		sidebar       int
		wantSidebar   int
		wantChat      int
		wantContent   int
		fillsScreen   bool
	}{
		{"desktop", 120, 40, 32, 32, 88, 40 - HeaderHeight - FooterHeight, false},
		{"collapsed", 120, 40, 8, 8, 112, 38, false},
		{"full width", 50, 20, 50, 50, 0, 18, true},
		{"sidebar wider than terminal", 50, 20, 80, 50, 0, 18, true},
		{"tiny terminal clamps", 5, 2, 0, 0, MinTerminalWidth, MinTerminalHeight - 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := GetViewContext()
			ctx.UpdateLayout(tt.width, tt.height, tt.sidebar)

			if ctx.SidebarWidth != tt.wantSidebar {
				t.Errorf("SidebarWidth = %d, want %d", ctx.SidebarWidth, tt.wantSidebar)
			}
			if ctx.ChatWidth != tt.wantChat {
				t.Errorf("ChatWidth = %d, want %d", ctx.ChatWidth, tt.wantChat)
			}
			if ctx.ContentHeight != tt.wantContent {
				t.Errorf("ContentHeight = %d, want %d", ctx.ContentHeight, tt.wantContent)
			}
			if ctx.SidebarFillsScreen() != tt.fillsScreen {
				t.Errorf("SidebarFillsScreen() = %v, want %v", ctx.SidebarFillsScreen(), tt.fillsScreen)
			}
		})
	}
}

func TestViewContext_InnerDimensions(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panel int
		want  int
	}{
		{40, 40 - BorderSize},
		{BorderSize, 0},
		{1, 0},
	}

	for _, tt := range tests {
		if got := ctx.InnerWidth(tt.panel); got != tt.want {
			t.Errorf("InnerWidth(%d) = %d, want %d", tt.panel, got, tt.want)
		}
		if got := ctx.InnerHeight(tt.panel); got != tt.want {
			t.Errorf("InnerHeight(%d) = %d, want %d", tt.panel, got, tt.want)
		}
	}
}
